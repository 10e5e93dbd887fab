// README: Debounced autocomplete sub-flow, independent of the calculation state machine.
package trip

import (
	"context"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"taxifare/internal/maps"
)

const suggestMinChars = 3

// debouncer holds at most one pending scheduled task, keyed by the latest
// input: scheduling again cancels the previous task before it fires.
type debouncer struct {
	mu    sync.Mutex
	timer *time.Timer
}

func (d *debouncer) schedule(delay time.Duration, fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(delay, fn)
}

func (d *debouncer) cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// SetDestinationText records a destination text change and schedules a
// debounced suggestion lookup. Typing invalidates coordinates cached from a
// prior suggestion selection. Below the minimum length, suggestions are
// suppressed and deliver is called with nil immediately. Without a deliver
// callback (or a configured suggester) no lookup is issued at all.
func (e *Engine) SetDestinationText(text string, deliver func([]maps.Suggestion)) {
	trimmed := strings.TrimSpace(text)

	e.mu.Lock()
	e.destText = trimmed
	e.cached = nil
	e.mu.Unlock()

	if utf8.RuneCountInString(trimmed) < suggestMinChars {
		e.deb.cancel()
		if deliver != nil {
			deliver(nil)
		}
		return
	}

	// No listener or no suggester: the text change still counts, but there
	// is nothing to look up. Any pending lookup is now stale either way.
	if deliver == nil || e.suggester == nil {
		e.deb.cancel()
		if deliver != nil {
			deliver(nil)
		}
		return
	}

	e.deb.schedule(e.debounce, func() {
		suggestions, err := e.suggester.Suggest(context.Background(), trimmed)
		if err != nil {
			e.log.Warn("suggestions unavailable", zap.Error(err))
			suggestions = nil
		}
		if deliver != nil {
			deliver(suggestions)
		}
	})
}

// SelectSuggestion fills the destination from a chosen candidate and, after
// a short settle delay, triggers the full calculation with the candidate's
// coordinates. Selection both cancels any pending suggestion lookup and
// acts as an implicit calculate trigger.
func (e *Engine) SelectSuggestion(ctx context.Context, s maps.Suggestion, done func(Snapshot, error)) {
	e.deb.cancel()

	e.mu.Lock()
	e.destText = s.DisplayName
	e.cached = &s
	e.mu.Unlock()

	e.deb.schedule(e.settle, func() {
		snap, err := e.calculate(ctx, &s)
		if done != nil {
			done(snap, err)
		}
	})
}
