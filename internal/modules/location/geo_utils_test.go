package location

import (
	"math"
	"testing"

	"taxifare/internal/types"
)

func TestHaversineKm_KnownDistances(t *testing.T) {
	tests := []struct {
		name      string
		a, b      types.Coordinates
		wantKm    float64
		tolerance float64
	}{
		{
			name:      "same point",
			a:         types.Coordinates{Lat: 36.685, Lng: -6.126},
			b:         types.Coordinates{Lat: 36.685, Lng: -6.126},
			wantKm:    0,
			tolerance: 0.001,
		},
		{
			name:      "Jerez centro to Cadiz (~27km straight line)",
			a:         types.Coordinates{Lat: 36.6850, Lng: -6.1261},
			b:         types.Coordinates{Lat: 36.5271, Lng: -6.2886},
			wantKm:    23,
			tolerance: 3,
		},
		{
			name:      "Jerez to Sevilla (~75km straight line)",
			a:         types.Coordinates{Lat: 36.6850, Lng: -6.1261},
			b:         types.Coordinates{Lat: 37.3891, Lng: -5.9845},
			wantKm:    79,
			tolerance: 4,
		},
		{
			name:      "New York to Los Angeles (~3944km)",
			a:         types.Coordinates{Lat: 40.7128, Lng: -74.0060},
			b:         types.Coordinates{Lat: 34.0522, Lng: -118.2437},
			wantKm:    3944,
			tolerance: 50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HaversineKm(tt.a, tt.b)
			if math.Abs(got-tt.wantKm) > tt.tolerance {
				t.Errorf("HaversineKm() = %f, want %f (±%f)", got, tt.wantKm, tt.tolerance)
			}
		})
	}
}

func TestHaversineKm_Symmetry(t *testing.T) {
	a := types.Coordinates{Lat: 36.7, Lng: -6.05}
	b := types.Coordinates{Lat: 37.4, Lng: -5.98}
	d1 := HaversineKm(a, b)
	d2 := HaversineKm(b, a)
	if math.Abs(d1-d2) > 0.0001 {
		t.Errorf("haversine is not symmetric: %f vs %f", d1, d2)
	}
}

func TestNearestOrigin(t *testing.T) {
	tests := []struct {
		name string
		pos  types.Coordinates
		want OriginID
	}{
		{"next to airport terminal", types.Coordinates{Lat: 36.7446, Lng: -6.0601}, OriginAirport},
		{"city centre", types.Coordinates{Lat: 36.6850, Lng: -6.1261}, OriginCity},
		{"north of the city, airport side", types.Coordinates{Lat: 36.74, Lng: -6.06}, OriginAirport},
		{"south-west suburb", types.Coordinates{Lat: 36.67, Lng: -6.15}, OriginCity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, km := NearestOrigin(tt.pos)
			if got != tt.want {
				t.Errorf("NearestOrigin(%v) = %s (%.2f km), want %s", tt.pos, got, km, tt.want)
			}
			if km < 0 {
				t.Errorf("negative distance %f", km)
			}
		})
	}
}

// An exact tie keeps the airport because the comparison is strict.
func TestNearestOrigin_TieGoesToAirport(t *testing.T) {
	got, _ := NearestOrigin(Origins[0].Position)
	if got != OriginAirport {
		t.Errorf("tie broke to %s, want airport", got)
	}
}
