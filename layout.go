package successione

import (
	"sync"
	"time"
)

// CompactWidth is the viewport width below which, combined with a portrait
// orientation, the renderers switch from the tabular layout to the stacked
// card layout.
const CompactWidth = 768

// DebounceQuiet is the default quiet period before a relayout fires after a
// burst of resize or orientation events.
const DebounceQuiet = 150 * time.Millisecond

// Viewport is the display surface the dashboard renders into.
type Viewport struct {
	Width  int
	Height int
	// Compact overrides CompactWidth when positive, for surfaces measured in
	// other units than pixels (a terminal, for instance).
	Compact int
}

// Portrait reports whether the viewport is taller than wide.
func (v Viewport) Portrait() bool { return v.Height > v.Width }

// CardMode reports whether the card layout applies: narrow and portrait.
func (v Viewport) CardMode() bool {
	compact := v.Compact
	if compact <= 0 {
		compact = CompactWidth
	}
	return v.Width < compact && v.Portrait()
}

// Debouncer coalesces bursts of resize or orientation events into a single
// callback, fired once after a quiet period. The zero value is not usable;
// use NewDebouncer.
type Debouncer struct {
	quiet time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive period defaults to DebounceQuiet.
func NewDebouncer(quiet time.Duration) *Debouncer {
	if quiet <= 0 {
		quiet = DebounceQuiet
	}
	return &Debouncer{quiet: quiet}
}

// Trigger schedules f after the quiet period. Triggering again before the
// period elapses replaces the pending call, so rapid events yield exactly
// one callback.
func (d *Debouncer) Trigger(f func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.quiet, f)
}

// Stop cancels any pending callback.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
