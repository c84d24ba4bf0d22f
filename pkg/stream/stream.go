// Package stream maintains a rolling time window of incoming points for
// live plots. A Window consumes a channel in its own goroutine, trims by
// age, and notifies registered callbacks with an ordered snapshot suitable
// for direct display.
package stream

import (
	"sync"
	"time"
)

// Point is one timestamped value entering the window.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// Window is a FIFO of points trimmed by timestamp. The buffer is ordered
// oldest first; removal is based on age relative to the newest point, not
// on count.
type Window struct {
	mu     sync.RWMutex
	points []Point

	duration time.Duration

	cbMu      sync.RWMutex
	callbacks []func(points []Point)

	// Set when the input channel closes; no callbacks fire after that.
	shutdown bool
}

// NewWindow returns a window keeping the given duration of points.
func NewWindow(duration time.Duration) *Window {
	return &Window{
		points:   make([]Point, 0),
		duration: duration,
	}
}

// Run consumes points from the input channel until it closes. Call it in
// a goroutine; it returns when the channel is drained.
func (w *Window) Run(input <-chan Point) {
	for p := range input {
		w.push(p)
	}
	w.mu.Lock()
	w.shutdown = true
	w.mu.Unlock()
}

// Push adds a point directly, for feeds that are not channel-shaped.
func (w *Window) Push(p Point) { w.push(p) }

func (w *Window) push(p Point) {
	w.mu.Lock()

	w.points = append(w.points, p)

	cutoff := p.Timestamp.Add(-w.duration)
	drop := 0
	for i, pt := range w.points {
		if pt.Timestamp.After(cutoff) {
			drop = i
			break
		}
	}
	if drop > 0 {
		w.points = w.points[drop:]
	}

	shouldNotify := !w.shutdown
	w.mu.Unlock()

	if shouldNotify {
		w.notify()
	}
}

// Points returns a copy of the current buffer, oldest first.
func (w *Window) Points() []Point {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]Point, len(w.points))
	copy(out, w.points)
	return out
}

// Len returns the number of buffered points.
func (w *Window) Len() int {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return len(w.points)
}

// Span returns the time covered by the buffer.
func (w *Window) Span() time.Duration {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if len(w.points) < 2 {
		return 0
	}
	return w.points[len(w.points)-1].Timestamp.Sub(w.points[0].Timestamp)
}

// OnUpdate registers a callback invoked with a snapshot after every push.
// Callbacks run on the feeding goroutine; widget updates must hop to the
// UI thread with fyne.Do.
func (w *Window) OnUpdate(fn func(points []Point)) {
	w.cbMu.Lock()
	defer w.cbMu.Unlock()
	w.callbacks = append(w.callbacks, fn)
}

func (w *Window) notify() {
	snapshot := w.Points()
	w.cbMu.RLock()
	defer w.cbMu.RUnlock()
	for _, fn := range w.callbacks {
		fn(snapshot)
	}
}
