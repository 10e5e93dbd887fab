// README: Free-route fare computation from distance and tariff.
package pricing

import "taxifare/internal/modules/tariff"

// Compute derives the fare for a free-route trip of distanceKm under tf.
// The per-km rate is doubled to cover the driver's empty return leg, and
// the flag-drop is zero in this mode; fixed-table lookups use their
// pre-tabulated price instead and never go through here.
//
// DurationMin is left at zero for the orchestrator to fill in from the
// actual route once it is known.
func Compute(distanceKm float64, tf tariff.Info) Calculation {
	cost := distanceKm * tf.PerKm * 2
	return Calculation{
		DistanceKm:   distanceKm,
		DistanceCost: cost,
		FlagDrop:     0,
		Total:        cost,
		TariffID:     tf.ID,
		TariffLabel:  tf.Label,
	}
}
