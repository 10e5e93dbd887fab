// README: Free-route calculation states and the visible trip snapshot.
package trip

import (
	"taxifare/internal/maps"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/types"
)

type State string

const (
	StateIdle                 State = "idle"
	StateLocatingOrigin       State = "locating_origin"
	StateAwaitingDestination  State = "awaiting_destination_input"
	StateResolvingDestination State = "resolving_destination"
	StateRouting              State = "routing_computing"
	StateFareReady            State = "fare_ready"
	StateEnrichmentPending    State = "enrichment_pending"
	StateEnrichmentComplete   State = "enrichment_complete"
	StateError                State = "error"
)

// AllowedTransitions represents the calculation flow (diagram) as code.
// A new request always restarts at LocatingOrigin, so the two resting
// states and Error transition back to it.
var AllowedTransitions = map[State][]State{
	StateIdle:                 {StateLocatingOrigin},
	StateLocatingOrigin:       {StateAwaitingDestination, StateError},
	StateAwaitingDestination:  {StateResolvingDestination},
	StateResolvingDestination: {StateRouting, StateError},
	StateRouting:              {StateFareReady, StateError},
	StateFareReady:            {StateEnrichmentPending},
	StateEnrichmentPending:    {StateEnrichmentComplete},
	StateEnrichmentComplete:   {StateLocatingOrigin},
	StateError:                {StateLocatingOrigin},
}

func CanTransition(from, to State) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Snapshot is the single visible state value of one calculation request.
// Weather and Incidents are optional enrichment: nil means unavailable.
type Snapshot struct {
	State     State
	RequestID string

	Origin      types.Coordinates
	OriginLabel string

	DestinationText string
	Destination     types.Coordinates
	DestinationName string

	Route        *maps.RouteResult
	Fare         *pricing.Calculation
	TariffReason string

	Weather   *maps.WeatherInfo
	Incidents []maps.TrafficIncident

	ErrorMessage string
}
