package pricing

import (
	"math"
	"testing"

	"taxifare/internal/modules/tariff"
)

func mustTariff(t *testing.T, id tariff.ID) tariff.Info {
	t.Helper()
	info, ok := tariff.ByID(id)
	if !ok {
		t.Fatalf("unknown tariff %s", id)
	}
	return info
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name       string
		distanceKm float64
		id         tariff.ID
		wantTotal  float64
	}{
		{"10km day tariff", 10, tariff.Tarifa7, 14.20},
		{"10km night tariff", 10, tariff.Tarifa8, 16.40},
		{"540km day tariff", 540, tariff.Tarifa7, 766.80},
		{"zero distance", 0, tariff.Tarifa7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.distanceKm, mustTariff(t, tt.id))
			if math.Abs(got.Total-tt.wantTotal) > 0.001 {
				t.Errorf("Compute(%v, %s).Total = %v, want %v", tt.distanceKm, tt.id, got.Total, tt.wantTotal)
			}
			if got.FlagDrop != 0 {
				t.Errorf("FlagDrop = %v, want 0 in free-route mode", got.FlagDrop)
			}
			if got.DurationMin != 0 {
				t.Errorf("DurationMin = %v, want 0 placeholder", got.DurationMin)
			}
			if got.Total != got.DistanceCost {
				t.Errorf("Total %v != DistanceCost %v with zero flag-drop", got.Total, got.DistanceCost)
			}
			if got.TariffID != tt.id {
				t.Errorf("TariffID = %s, want %s", got.TariffID, tt.id)
			}
		})
	}
}
