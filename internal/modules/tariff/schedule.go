// README: Tariff schedule resolution from a timestamp (holiday > weekend > night > weekday day).
package tariff

import "time"

// holidays is the fixed multi-year holiday calendar (national plus
// Andalusian dates). Keys are local dates formatted as yyyy-mm-dd.
var holidays = map[string]bool{
	// 2024
	"2024-01-01": true, "2024-01-06": true, "2024-02-28": true,
	"2024-03-28": true, "2024-03-29": true, "2024-05-01": true,
	"2024-08-15": true, "2024-10-12": true, "2024-11-01": true,
	"2024-12-06": true, "2024-12-08": true, "2024-12-25": true,
	// 2025
	"2025-01-01": true, "2025-01-06": true, "2025-02-28": true,
	"2025-04-17": true, "2025-04-18": true, "2025-05-01": true,
	"2025-08-15": true, "2025-10-12": true, "2025-11-01": true,
	"2025-12-06": true, "2025-12-08": true, "2025-12-25": true,
	// 2026
	"2026-01-01": true, "2026-01-06": true, "2026-02-28": true,
	"2026-04-02": true, "2026-04-03": true, "2026-05-01": true,
	"2026-08-15": true, "2026-10-12": true, "2026-11-01": true,
	"2026-12-06": true, "2026-12-08": true, "2026-12-25": true,
	// 2027
	"2027-01-01": true, "2027-01-06": true, "2027-02-28": true,
	"2027-03-25": true, "2027-03-26": true, "2027-05-01": true,
	"2027-08-15": true, "2027-10-12": true, "2027-11-01": true,
	"2027-12-06": true, "2027-12-08": true, "2027-12-25": true,
}

// cause is the single branch that fired for a timestamp. Resolve and
// ResolveReason both derive from it, so they cannot drift apart.
type cause int

const (
	causeHoliday cause = iota
	causeSunday
	causeSaturday
	causeNight
	causeWeekday
)

func classify(t time.Time) cause {
	switch {
	case holidays[t.Format("2006-01-02")]:
		return causeHoliday
	case t.Weekday() == time.Sunday:
		return causeSunday
	case t.Weekday() == time.Saturday:
		return causeSaturday
	case t.Hour() >= 22 || t.Hour() < 6:
		return causeNight
	default:
		return causeWeekday
	}
}

// Resolve returns the tariff in force at t. Total and deterministic: every
// timestamp maps to exactly one of the two tariffs.
func Resolve(t time.Time) Info {
	if classify(t) == causeWeekday {
		return day
	}
	return night
}

// ResolveReason returns the human-readable cause for the tariff selected at
// t, following the same branch order as Resolve.
func ResolveReason(t time.Time) string {
	switch classify(t) {
	case causeHoliday:
		return "festivo"
	case causeSunday:
		return "domingo"
	case causeSaturday:
		return "sábado"
	case causeNight:
		return "horario nocturno"
	default:
		return "día laborable"
	}
}
