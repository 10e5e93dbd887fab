// README: Fare calculation result for the free-route mode.
package pricing

import "taxifare/internal/modules/tariff"

// Calculation is the monetary breakdown of one free-route estimate.
// Immutable once returned, except that the caller overwrites DurationMin
// with the routed duration (the calculator is distance-only).
type Calculation struct {
	DistanceKm   float64
	DurationMin  float64
	FlagDrop     float64
	DistanceCost float64
	Total        float64
	TariffID     tariff.ID
	TariffLabel  string
}
