// README: Regulated tariff definitions (Tarifa 7 day, Tarifa 8 night/holiday).
package tariff

// ID identifies one of the two regulated rate schedules. The set is closed:
// every timestamp maps to exactly one of them.
type ID string

const (
	Tarifa7 ID = "tarifa7" // weekday daytime
	Tarifa8 ID = "tarifa8" // nights, weekends and holidays
)

// Info holds the regulated amounts for one tariff. Values are euros.
// Instances are static reference data, never mutated.
type Info struct {
	ID          ID
	Label       string
	Description string
	PerKm       float64
	FlagDrop    float64
	HourlyWait  float64
	MinFare     float64
	Wait15Min   float64
}

var (
	day = Info{
		ID:          Tarifa7,
		Label:       "Tarifa 7",
		Description: "Laborables de 6:00 a 22:00",
		PerKm:       0.71,
		FlagDrop:    1.45,
		HourlyWait:  21.00,
		MinFare:     4.20,
		Wait15Min:   5.25,
	}
	night = Info{
		ID:          Tarifa8,
		Label:       "Tarifa 8",
		Description: "Noches, fines de semana y festivos",
		PerKm:       0.82,
		FlagDrop:    1.78,
		HourlyWait:  26.25,
		MinFare:     5.25,
		Wait15Min:   6.56,
	}
)

// ByID returns the tariff definition for id.
func ByID(id ID) (Info, bool) {
	switch id {
	case Tarifa7:
		return day, true
	case Tarifa8:
		return night, true
	}
	return Info{}, false
}
