// README: Device geolocation port with failure classes and cached-fix fallback.
package location

import (
	"context"
	"errors"
	"sync"
	"time"

	"taxifare/internal/types"
)

// Failure classes for a position request. Each maps to a distinct
// user-visible message; callers do not distinguish them for retry purposes.
var (
	ErrPermissionDenied = errors.New("geolocation permission denied")
	ErrUnavailable      = errors.New("geolocation position unavailable")
	ErrTimeout          = errors.New("geolocation timed out")
)

// Options mirrors the position-request parameters of the device layer.
type Options struct {
	HighAccuracy bool
	Timeout      time.Duration
	MaximumAge   time.Duration
}

func DefaultOptions() Options {
	return Options{
		HighAccuracy: true,
		Timeout:      10 * time.Second,
		MaximumAge:   60 * time.Second,
	}
}

// Locator acquires the current device position.
type Locator interface {
	Locate(ctx context.Context) (types.Coordinates, error)
}

// FailureMessage translates a locator error into the message shown to the
// user.
func FailureMessage(err error) string {
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return "Permiso de ubicación denegado"
	case errors.Is(err, ErrUnavailable):
		return "Ubicación no disponible"
	case errors.Is(err, ErrTimeout):
		return "Tiempo de espera agotado al obtener la ubicación"
	default:
		return "No se pudo obtener la ubicación"
	}
}

// StaticLocator always reports a fixed position. Used by the demo binary
// and tests.
type StaticLocator struct {
	Position types.Coordinates
}

func (s StaticLocator) Locate(ctx context.Context) (types.Coordinates, error) {
	return s.Position, nil
}

// CachedLocator wraps another locator, bounding each request with the
// configured timeout and falling back to the last known fix when the inner
// locator fails and the fix is still within MaximumAge.
type CachedLocator struct {
	inner Locator
	opts  Options

	mu     sync.Mutex
	last   types.Coordinates
	lastAt time.Time
}

func NewCachedLocator(inner Locator, opts Options) *CachedLocator {
	return &CachedLocator{inner: inner, opts: opts}
}

func (c *CachedLocator) Locate(ctx context.Context) (types.Coordinates, error) {
	reqCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		reqCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	pos, err := c.inner.Locate(reqCtx)
	if err == nil {
		c.mu.Lock()
		c.last, c.lastAt = pos, time.Now()
		c.mu.Unlock()
		return pos, nil
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = ErrTimeout
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.lastAt.IsZero() && time.Since(c.lastAt) <= c.opts.MaximumAge {
		return c.last, nil
	}
	return types.Coordinates{}, err
}
