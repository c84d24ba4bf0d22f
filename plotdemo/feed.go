package main

import (
	"context"
	"math"
	"math/rand"
	"time"

	"github.com/itohio/goplot/pkg/stream"
)

const feedBufferSize = 100

// feed simulates a two-channel data source for the demo: a slow sine
// with a bit of drift, and band-limited noise.
type feed struct {
	rate   time.Duration
	ctx    context.Context
	cancel context.CancelFunc

	signal chan stream.Point
	noise  chan stream.Point

	startTime time.Time
	noiseAcc  float64
}

func newFeed(rate time.Duration) *feed {
	ctx, cancel := context.WithCancel(context.Background())
	return &feed{
		rate:   rate,
		ctx:    ctx,
		cancel: cancel,
		signal: make(chan stream.Point, feedBufferSize),
		noise:  make(chan stream.Point, feedBufferSize),
	}
}

// start begins generating samples until stop is called.
func (f *feed) start() {
	f.startTime = time.Now()
	go f.generate()
}

// stop cancels generation and closes both channels.
func (f *feed) stop() {
	f.cancel()
}

func (f *feed) generate() {
	ticker := time.NewTicker(f.rate)
	defer ticker.Stop()
	defer close(f.signal)
	defer close(f.noise)

	for {
		select {
		case <-f.ctx.Done():
			return
		case <-ticker.C:
			now := time.Now()
			f.emit(f.signal, stream.Point{Timestamp: now, Value: f.signalAt(now)})
			f.emit(f.noise, stream.Point{Timestamp: now, Value: f.noiseNext()})
		}
	}
}

func (f *feed) emit(ch chan stream.Point, p stream.Point) {
	select {
	case ch <- p:
	case <-f.ctx.Done():
	default:
		// Channel full, skip
	}
}

func (f *feed) signalAt(now time.Time) float64 {
	t := now.Sub(f.startTime).Seconds()
	return math.Sin(2*math.Pi*0.2*t) + 0.3*math.Sin(2*math.Pi*1.7*t) + 0.05*t
}

func (f *feed) noiseNext() float64 {
	// Leaky integrator over white noise keeps the trace band-limited.
	f.noiseAcc = 0.95*f.noiseAcc + 0.05*rand.NormFloat64()
	return f.noiseAcc
}
