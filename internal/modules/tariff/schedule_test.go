package tariff

import (
	"testing"
	"time"
)

func at(y int, m time.Month, d, hour, min int) time.Time {
	return time.Date(y, m, d, hour, min, 0, 0, time.Local)
}

func TestResolve_BranchOrder(t *testing.T) {
	tests := []struct {
		name       string
		t          time.Time
		wantID     ID
		wantReason string
	}{
		// holiday wins over everything, including a weekday daytime hour
		{"holiday weekday noon", at(2026, time.May, 1, 12, 0), Tarifa8, "festivo"},
		{"non-holiday Sunday", at(2026, time.February, 1, 12, 0), Tarifa8, "domingo"}, // 2026-02-01 is a Sunday, not a holiday
		{"christmas", at(2025, time.December, 25, 10, 0), Tarifa8, "festivo"},
		// weekend
		{"saturday afternoon", at(2026, time.June, 6, 14, 0), Tarifa8, "sábado"},
		{"sunday morning", at(2026, time.June, 7, 9, 0), Tarifa8, "domingo"},
		// night hours on a plain weekday
		{"tuesday 23:30", at(2026, time.June, 9, 23, 30), Tarifa8, "horario nocturno"},
		{"tuesday 05:30", at(2026, time.June, 9, 5, 30), Tarifa8, "horario nocturno"},
		// boundaries: 06:00 and 21:59 are daytime, 22:00 is night
		{"tuesday 06:00", at(2026, time.June, 9, 6, 0), Tarifa7, "día laborable"},
		{"tuesday 21:59", at(2026, time.June, 9, 21, 59), Tarifa7, "día laborable"},
		{"tuesday 22:00", at(2026, time.June, 9, 22, 0), Tarifa8, "horario nocturno"},
		// plain weekday daytime
		{"tuesday 14:00", at(2026, time.June, 9, 14, 0), Tarifa7, "día laborable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.t)
			if got.ID != tt.wantID {
				t.Errorf("Resolve(%v).ID = %s, want %s", tt.t, got.ID, tt.wantID)
			}
			if reason := ResolveReason(tt.t); reason != tt.wantReason {
				t.Errorf("ResolveReason(%v) = %q, want %q", tt.t, reason, tt.wantReason)
			}
		})
	}
}

func TestResolve_HolidaySetAlwaysNight(t *testing.T) {
	for date := range holidays {
		d, err := time.ParseInLocation("2006-01-02", date, time.Local)
		if err != nil {
			t.Fatalf("bad holiday date %q: %v", date, err)
		}
		// sample several hours, including plain daytime
		for _, hour := range []int{0, 9, 14, 23} {
			ts := d.Add(time.Duration(hour) * time.Hour)
			if got := Resolve(ts); got.ID != Tarifa8 {
				t.Errorf("Resolve(%v) = %s, want tarifa8 on holiday", ts, got.ID)
			}
			if ResolveReason(ts) != "festivo" {
				t.Errorf("ResolveReason(%v) = %q, want festivo", ts, ResolveReason(ts))
			}
		}
	}
}

// TestResolve_ReasonLockStep samples a dense grid of timestamps and checks
// that the reason string always matches the tariff the resolver picked.
func TestResolve_ReasonLockStep(t *testing.T) {
	start := at(2026, time.January, 1, 0, 0)
	for i := 0; i < 365*4; i++ {
		ts := start.Add(time.Duration(i) * 6 * time.Hour)
		id := Resolve(ts).ID
		reason := ResolveReason(ts)
		dayReason := reason == "día laborable"
		if dayReason && id != Tarifa7 {
			t.Fatalf("at %v: reason %q but tariff %s", ts, reason, id)
		}
		if !dayReason && id != Tarifa8 {
			t.Fatalf("at %v: reason %q but tariff %s", ts, reason, id)
		}
	}
}

func TestResolve_Purity(t *testing.T) {
	ts := at(2026, time.March, 4, 17, 30)
	first := Resolve(ts)
	for i := 0; i < 10; i++ {
		if got := Resolve(ts); got != first {
			t.Fatalf("Resolve not pure: %+v vs %+v", got, first)
		}
	}
}

func TestByID(t *testing.T) {
	if info, ok := ByID(Tarifa7); !ok || info.PerKm != 0.71 {
		t.Errorf("ByID(tarifa7) = %+v, %v", info, ok)
	}
	if info, ok := ByID(Tarifa8); !ok || info.PerKm != 0.82 {
		t.Errorf("ByID(tarifa8) = %+v, %v", info, ok)
	}
	if _, ok := ByID("tarifa9"); ok {
		t.Error("ByID accepted an unknown tariff")
	}
}
