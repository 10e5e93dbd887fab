// README: Embedded fare-table dataset, loaded once at startup.
package destinations

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"taxifare/internal/modules/location"
)

//go:embed tables.yaml
var tablesYAML []byte

// Tables holds the two hand-maintained origin tables. The data is injected
// reference material: a regulatory update replaces tables.yaml, not code.
type Tables struct {
	Airport []Destination `yaml:"airport"`
	City    []Destination `yaml:"city"`
}

// Load parses the embedded dataset.
func Load() (*Tables, error) {
	var t Tables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		return nil, fmt.Errorf("parse fare tables: %w", err)
	}
	if len(t.Airport) == 0 || len(t.City) == 0 {
		return nil, fmt.Errorf("fare tables incomplete: %d airport, %d city rows", len(t.Airport), len(t.City))
	}
	return &t, nil
}

// ForOrigin returns the table for the given origin, in source order.
func (t *Tables) ForOrigin(origin location.OriginID) []Destination {
	if origin == location.OriginAirport {
		return t.Airport
	}
	return t.City
}
