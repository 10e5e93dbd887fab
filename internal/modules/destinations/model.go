// README: Fixed fare-table reference data (one table per origin).
package destinations

import (
	"taxifare/internal/modules/tariff"
)

// CategoryAll disables category filtering in Search.
const CategoryAll = "all"

// Destination is one row of a fixed fare table. The prices are regulatory
// pre-tabulated amounts in euros; they are looked up, never recomputed.
type Destination struct {
	Name         string  `yaml:"name"`
	Km           float64 `yaml:"km"`
	PriceTarifa7 float64 `yaml:"tarifa7"`
	PriceTarifa8 float64 `yaml:"tarifa8"`
	Category     string  `yaml:"category"`
}

// Price returns the pre-tabulated fare under the given tariff.
func (d Destination) Price(id tariff.ID) float64 {
	if id == tariff.Tarifa8 {
		return d.PriceTarifa8
	}
	return d.PriceTarifa7
}
