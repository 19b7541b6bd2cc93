package imports

import (
	"sync/atomic"

	"github.com/mosaiq/go-import-framework/pkg/ui"
)

// Tracker maps (current, total) batch progress onto a progress bar. Steps
// may come from concurrent workers; the counter is atomic and every step
// results in exactly one bar update.
type Tracker struct {
	bar     ui.ProgressBar
	total   int64
	current atomic.Int64
}

// NewTracker creates a Tracker rendering onto the given progress bar.
func NewTracker(bar ui.ProgressBar) *Tracker {
	return &Tracker{bar: bar}
}

// Begin announces a batch of total steps. A zero total is reported as
// complete immediately.
func (t *Tracker) Begin(title string, total int) {
	t.total = int64(total)
	t.current.Store(0)
	t.bar.SetTitle(title)
	if total == 0 {
		_ = t.bar.UpdateProgress(1)
		return
	}
	_ = t.bar.UpdateProgress(0)
}

// Step records one completed item.
func (t *Tracker) Step() {
	current := t.current.Add(1)
	if t.total <= 0 {
		return
	}
	_ = t.bar.UpdateProgress(float64(current) / float64(t.total))
}

// Current returns the number of completed steps.
func (t *Tracker) Current() int {
	return int(t.current.Load())
}

// Done removes the bar from the terminal.
func (t *Tracker) Done() {
	_ = t.bar.Clear()
}
