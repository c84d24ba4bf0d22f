package stream

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindow_TrimsByAge(t *testing.T) {
	w := NewWindow(10 * time.Second)
	now := time.Now()

	for i := 0; i < 30; i++ {
		w.Push(Point{Timestamp: now.Add(time.Duration(i) * time.Second), Value: float64(i)})
	}

	pts := w.Points()
	require.NotEmpty(t, pts)
	// Everything older than 10s before the newest point is gone.
	newest := pts[len(pts)-1].Timestamp
	for _, p := range pts {
		assert.True(t, p.Timestamp.After(newest.Add(-10*time.Second)))
	}
	assert.EqualValues(t, 29, pts[len(pts)-1].Value)
}

func TestWindow_OrderedOldestFirst(t *testing.T) {
	w := NewWindow(time.Minute)
	now := time.Now()
	for i := 0; i < 5; i++ {
		w.Push(Point{Timestamp: now.Add(time.Duration(i) * time.Millisecond), Value: float64(i)})
	}

	pts := w.Points()
	require.Len(t, pts, 5)
	for i := 1; i < len(pts); i++ {
		assert.True(t, pts[i].Timestamp.After(pts[i-1].Timestamp))
	}
}

func TestWindow_PointsReturnsCopy(t *testing.T) {
	w := NewWindow(time.Minute)
	w.Push(Point{Timestamp: time.Now(), Value: 1})

	a := w.Points()
	a[0].Value = 99
	b := w.Points()
	assert.EqualValues(t, 1, b[0].Value)
}

func TestWindow_CallbacksReceiveSnapshots(t *testing.T) {
	w := NewWindow(time.Minute)
	var got [][]Point
	w.OnUpdate(func(pts []Point) {
		got = append(got, pts)
	})

	now := time.Now()
	w.Push(Point{Timestamp: now, Value: 1})
	w.Push(Point{Timestamp: now.Add(time.Millisecond), Value: 2})

	require.Len(t, got, 2)
	assert.Len(t, got[0], 1)
	assert.Len(t, got[1], 2)
}

func TestWindow_Span(t *testing.T) {
	w := NewWindow(time.Minute)
	now := time.Now()
	assert.Equal(t, time.Duration(0), w.Span())

	w.Push(Point{Timestamp: now})
	w.Push(Point{Timestamp: now.Add(3 * time.Second)})
	assert.Equal(t, 3*time.Second, w.Span())
}

func TestWindow_RunConsumesUntilClose(t *testing.T) {
	w := NewWindow(time.Minute)
	updates := 0
	w.OnUpdate(func([]Point) { updates++ })

	in := make(chan Point)
	done := make(chan struct{})
	go func() {
		w.Run(in)
		close(done)
	}()

	now := time.Now()
	for i := 0; i < 10; i++ {
		in <- Point{Timestamp: now.Add(time.Duration(i) * time.Millisecond), Value: float64(i)}
	}
	close(in)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after channel close")
	}

	assert.Equal(t, 10, w.Len())
	assert.Equal(t, 10, updates)

	// No callbacks after shutdown.
	w.Push(Point{Timestamp: now.Add(time.Second)})
	assert.Equal(t, 10, updates)
}
