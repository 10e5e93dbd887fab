// README: Fixed fare-table origins and nearest-origin resolution.
package location

import "taxifare/internal/types"

// OriginID identifies one of the two fixed fare-table origins.
type OriginID string

const (
	OriginAirport OriginID = "airport"
	OriginCity    OriginID = "city"
)

type Origin struct {
	ID       OriginID
	Name     string
	Position types.Coordinates
}

// Origins lists the fixed reference points, airport first. NearestOrigin
// relies on this order for tie-breaking.
var Origins = []Origin{
	{ID: OriginAirport, Name: "Aeropuerto de Jerez", Position: types.Coordinates{Lat: 36.7446, Lng: -6.0601}},
	{ID: OriginCity, Name: "Jerez centro", Position: types.Coordinates{Lat: 36.6850, Lng: -6.1261}},
}

// NearestOrigin returns the closest fixed origin to pos and the great-circle
// distance to it in kilometres. Comparison is strict, so an exact tie keeps
// the airport.
func NearestOrigin(pos types.Coordinates) (OriginID, float64) {
	best := Origins[0]
	bestKm := HaversineKm(pos, best.Position)
	for _, o := range Origins[1:] {
		if d := HaversineKm(pos, o.Position); d < bestKm {
			best, bestKm = o, d
		}
	}
	return best.ID, bestKm
}
