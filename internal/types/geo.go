// README: Common geographic value objects used across modules.
package types

import "fmt"

// Coordinates is a WGS-84 position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lng float64
}

// Label renders the position as "lat, lng" with five decimals, the fallback
// display form when reverse geocoding is unavailable.
func (c Coordinates) Label() string {
	return fmt.Sprintf("%.5f, %.5f", c.Lat, c.Lng)
}
