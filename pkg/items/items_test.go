package items

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/goplot/pkg/geom"
)

func TestCurve_SetData(t *testing.T) {
	c := NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1, 2}, []float64{5, -1, 3}))
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, geom.NewRect(0, -1, 2, 5), c.Bounds())
}

func TestCurve_SetData_MismatchDoesNotMutate(t *testing.T) {
	c := NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{1, 2}))

	err := c.SetData([]float64{0, 1, 2}, []float64{1, 2})
	require.Error(t, err)
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, geom.NewRect(0, 1, 1, 2), c.Bounds())
}

func TestCurve_DisplayPointsDecimatesAndCaches(t *testing.T) {
	c := NewCurve("sig")
	xs := make([]float64, 10000)
	ys := make([]float64, 10000)
	for i := range xs {
		xs[i] = float64(i)
	}
	ys[7777] = 42 // spike
	require.NoError(t, c.SetData(xs, ys))

	disp := c.DisplayPoints()
	assert.LessOrEqual(t, len(disp), 1000)

	found := false
	for _, p := range disp {
		if p.Y == 42 {
			found = true
		}
	}
	assert.True(t, found, "spike lost")

	// Cached until the next SetData.
	again := c.DisplayPoints()
	assert.Equal(t, &disp[0], &again[0])
}

func TestCurve_ChangeCallback(t *testing.T) {
	c := NewCurve("sig")
	calls := 0
	c.OnChange(func() { calls++ })

	require.NoError(t, c.SetData([]float64{0}, []float64{0}))
	c.SetVisible(false)
	c.SetVisible(false) // no-op
	assert.Equal(t, 2, calls)
}

func TestScatter_SetData(t *testing.T) {
	s := NewScatter("pts")
	require.Error(t, s.SetData([]float64{1}, []float64{}))
	require.NoError(t, s.SetData([]float64{1, 2}, []float64{3, 4}))
	assert.Len(t, s.Points(), 2)
	assert.Equal(t, geom.NewRect(1, 3, 2, 4), s.Bounds())
}

func TestBar_BoundsIncludeWidthAndBaseline(t *testing.T) {
	b := NewBar("hist")
	b.Width = 1
	require.NoError(t, b.SetData([]float64{0, 2}, []float64{5, -3}))

	got := b.Bounds()
	assert.InDelta(t, -0.5, got.X0, 1e-12)
	assert.InDelta(t, 2.5, got.X1, 1e-12)
	// Bars span from the baseline at 0 through both heights.
	assert.InDelta(t, -3, got.Y0, 1e-12)
	assert.InDelta(t, 5, got.Y1, 1e-12)
}

func TestErrorBar_BoundsIncludeWhiskers(t *testing.T) {
	e := NewErrorBar("err")
	require.Error(t, e.SetData([]float64{1}, []float64{1}, []float64{1}, nil))
	require.NoError(t, e.SetData(
		[]float64{0, 1}, []float64{10, 20}, []float64{2, 1}, []float64{3, 5}))

	got := e.Bounds()
	assert.InDelta(t, 8, got.Y0, 1e-12)
	assert.InDelta(t, 25, got.Y1, 1e-12)
}

func TestCandlestick_SetData(t *testing.T) {
	c := NewCandlestick("ohlc")
	require.NoError(t, c.SetData(
		[]float64{0, 1},
		[]float64{10, 12}, // open
		[]float64{15, 13}, // high
		[]float64{9, 8},   // low
		[]float64{12, 9},  // close
	))
	got := c.Bounds()
	assert.InDelta(t, 8, got.Y0, 1e-12)
	assert.InDelta(t, 15, got.Y1, 1e-12)
}

func TestCandlestick_RejectsInvertedCandle(t *testing.T) {
	c := NewCandlestick("ohlc")
	err := c.SetData(
		[]float64{0},
		[]float64{10},
		[]float64{9}, // high below open
		[]float64{8},
		[]float64{9},
	)
	require.Error(t, err)
	assert.False(t, c.Bounds().IsFinite())
}

func TestStem_BoundsIncludeBaseline(t *testing.T) {
	s := NewStem("stems")
	require.NoError(t, s.SetData([]float64{0, 1}, []float64{4, 7}))

	got := s.Bounds()
	assert.InDelta(t, 0, got.Y0, 1e-12) // baseline pulled in
	assert.InDelta(t, 7, got.Y1, 1e-12)
}

func TestAnnotation(t *testing.T) {
	a := NewAnnotation("peak", 3, 9)
	assert.Equal(t, geom.Rect{X0: 3, Y0: 9, X1: 3, Y1: 9}, a.Bounds())

	a.SetPos(1, 2)
	x, y := a.Pos()
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 2.0, y)
}

func TestCurve_SetMaxDisplayPointsNotifies(t *testing.T) {
	c := NewCurve("c")
	require.NoError(t, c.SetData([]float64{0, 1, 2}, []float64{3, 4, 5}))

	calls := 0
	c.OnChange(func() { calls++ })
	c.SetMaxDisplayPoints(2)
	assert.Equal(t, 1, calls)

	// Unchanged limit stays silent.
	c.SetMaxDisplayPoints(2)
	assert.Equal(t, 1, calls)
}
