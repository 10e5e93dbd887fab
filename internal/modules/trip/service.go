// README: Free-route orchestrator; sequences geolocation, destination resolution, routing, fare and enrichment.
package trip

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"taxifare/internal/maps"
	"taxifare/internal/modules/location"
	"taxifare/internal/modules/pricing"
	"taxifare/internal/modules/tariff"
	"taxifare/internal/types"
)

// Input errors: blocking inline messages, no state change.
var (
	ErrMissingOrigin      = errors.New("no hay origen disponible")
	ErrMissingDestination = errors.New("introduce un destino")
)

type Router interface {
	Route(ctx context.Context, origin, destination types.Coordinates) maps.RouteResult
}

type Geocoder interface {
	Forward(ctx context.Context, query string) maps.GeocodeResult
	Reverse(ctx context.Context, pos types.Coordinates) maps.ReverseResult
}

type Suggester interface {
	Suggest(ctx context.Context, query string) ([]maps.Suggestion, error)
}

type WeatherProvider interface {
	Current(ctx context.Context, pos types.Coordinates) (maps.WeatherInfo, error)
}

type TrafficProvider interface {
	Incidents(ctx context.Context, province string) ([]maps.TrafficIncident, error)
}

type Deps struct {
	Locator   location.Locator
	Router    Router
	Geocoder  Geocoder
	Suggester Suggester
	Weather   WeatherProvider
	Traffic   TrafficProvider
	Log       *zap.Logger

	Debounce time.Duration // autocomplete debounce, default 500ms
	Settle   time.Duration // delay between suggestion selection and calculation, default 250ms
	Now      func() time.Time
}

// Engine runs free-route calculations. Requests are not cancellable once
// issued; instead each one is stamped with a monotonic sequence number and
// only the most recent request's results are committed to the visible
// snapshot.
type Engine struct {
	locator   location.Locator
	router    Router
	geocoder  Geocoder
	suggester Suggester
	weather   WeatherProvider
	traffic   TrafficProvider
	log       *zap.Logger
	debounce  time.Duration
	settle    time.Duration
	now       func() time.Time

	seq atomic.Uint64
	deb debouncer

	mu       sync.Mutex
	snap     Snapshot
	destText string
	cached   *maps.Suggestion
}

func NewEngine(deps Deps) *Engine {
	e := &Engine{
		locator:   deps.Locator,
		router:    deps.Router,
		geocoder:  deps.Geocoder,
		suggester: deps.Suggester,
		weather:   deps.Weather,
		traffic:   deps.Traffic,
		log:       deps.Log,
		debounce:  deps.Debounce,
		settle:    deps.Settle,
		now:       deps.Now,
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.debounce == 0 {
		e.debounce = 500 * time.Millisecond
	}
	if e.settle == 0 {
		e.settle = 250 * time.Millisecond
	}
	if e.now == nil {
		e.now = time.Now
	}
	e.snap.State = StateIdle
	return e
}

// Snapshot returns a copy of the current visible state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snap
}

// Calculate runs the full free-route flow for the current destination text
// (or previously selected suggestion coordinates) and returns the resulting
// snapshot. The returned snapshot always reflects this request, even when a
// newer request has since claimed the visible state.
func (e *Engine) Calculate(ctx context.Context) (Snapshot, error) {
	return e.calculate(ctx, nil)
}

func (e *Engine) calculate(ctx context.Context, explicit *maps.Suggestion) (Snapshot, error) {
	e.mu.Lock()
	destText := e.destText
	cached := e.cached
	e.mu.Unlock()

	if e.locator == nil {
		return e.Snapshot(), ErrMissingOrigin
	}
	if explicit == nil && cached == nil && destText == "" {
		return e.Snapshot(), ErrMissingDestination
	}

	seq := e.seq.Add(1)
	reqID := uuid.NewString()
	log := e.log.With(zap.String("request_id", reqID), zap.Uint64("seq", seq))

	var s Snapshot
	s.RequestID = reqID
	s.DestinationText = destText
	s.State = StateLocatingOrigin
	e.commit(seq, log, s)

	// 1. Acquire the device position; classify failures for display.
	origin, err := e.locator.Locate(ctx)
	if err != nil {
		return e.fail(seq, log, s, location.FailureMessage(err)), nil
	}
	s.Origin = origin

	// Best-effort origin label; degrades to raw coordinates.
	s.OriginLabel = origin.Label()
	if rev := e.geocoder.Reverse(ctx, origin); rev.Success {
		s.OriginLabel = joinLabel(rev.Street, rev.City)
	} else {
		log.Debug("reverse geocoding unavailable", zap.String("reason", rev.Error))
	}
	s.State = StateAwaitingDestination
	e.commit(seq, log, s)

	// 2. Resolve destination coordinates: explicit > cached > geocoded.
	s.State = StateResolvingDestination
	e.commit(seq, log, s)
	switch {
	case explicit != nil:
		s.Destination = explicit.Position
		s.DestinationName = explicit.DisplayName
		s.DestinationText = explicit.DisplayName
	case cached != nil:
		s.Destination = cached.Position
		s.DestinationName = cached.DisplayName
	default:
		gr := e.geocoder.Forward(ctx, destText)
		if !gr.Success {
			return e.fail(seq, log, s, gr.Error), nil
		}
		s.Destination = gr.Position
		s.DestinationName = gr.DisplayName
	}

	// 3. Route. Failure is terminal for this request; no retry.
	s.State = StateRouting
	e.commit(seq, log, s)
	route := e.router.Route(ctx, s.Origin, s.Destination)
	if !route.Success {
		return e.fail(seq, log, s, route.Error), nil
	}
	s.Route = &route

	// 4. Fare under the tariff in force right now, then take the routed
	// duration over the calculator's zero placeholder.
	now := e.now()
	calc := pricing.Compute(route.DistanceKm, tariff.Resolve(now))
	calc.DurationMin = route.DurationMin
	s.Fare = &calc
	s.TariffReason = tariff.ResolveReason(now)
	s.State = StateFareReady
	e.commit(seq, log, s)

	// 5. Enrichment fan-out; both lookups are joined, either may fail
	// without affecting the fare.
	s.State = StateEnrichmentPending
	e.commit(seq, log, s)

	var (
		weather   *maps.WeatherInfo
		incidents []maps.TrafficIncident
	)
	var g errgroup.Group
	g.Go(func() error {
		w, err := e.weather.Current(ctx, s.Destination)
		if err != nil {
			log.Warn("weather enrichment unavailable", zap.Error(err))
			return nil
		}
		weather = &w
		return nil
	})
	g.Go(func() error {
		province := maps.ProvinceFromDisplayName(s.DestinationName)
		if province == "" {
			return nil
		}
		inc, err := e.traffic.Incidents(ctx, province)
		if err != nil {
			log.Warn("traffic enrichment unavailable", zap.Error(err))
			return nil
		}
		incidents = inc
		return nil
	})
	_ = g.Wait()

	s.Weather = weather
	s.Incidents = incidents
	s.State = StateEnrichmentComplete
	e.commit(seq, log, s)

	return s, nil
}

// commit publishes s as the visible snapshot unless a newer request has
// been issued since; a stale publish is dropped.
func (e *Engine) commit(seq uint64, log *zap.Logger, s Snapshot) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if seq != e.seq.Load() {
		log.Debug("stale result discarded", zap.String("state", string(s.State)))
		return
	}
	log.Debug("state committed", zap.String("state", string(s.State)))
	e.snap = s
}

func (e *Engine) fail(seq uint64, log *zap.Logger, s Snapshot, msg string) Snapshot {
	s.State = StateError
	s.ErrorMessage = msg
	e.commit(seq, log, s)
	return s
}

func joinLabel(street, city string) string {
	switch {
	case street != "" && city != "":
		return street + ", " + city
	case street != "":
		return street
	default:
		return city
	}
}
