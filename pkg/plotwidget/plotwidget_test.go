package plotwidget

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/items"
)

func newTestPlot(t *testing.T) *PlotWidget {
	t.Helper()
	test.NewApp()
	p := New(nil)
	p.Resize(fyne.NewSize(480, 360))
	return p
}

func TestAddItem_AutoRanges(t *testing.T) {
	p := newTestPlot(t)

	c := items.NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1, 2}, []float64{-1, 0, 5}))
	p.AddItem(c)

	assert.Equal(t, geom.NewRect(0, -1, 2, 5), p.Canvas().TargetRect())
}

func TestItemChange_Reranges(t *testing.T) {
	p := newTestPlot(t)

	c := items.NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{0, 1}))
	p.AddItem(c)

	require.NoError(t, c.SetData([]float64{0, 10}, []float64{0, 100}))
	assert.Equal(t, geom.NewRect(0, 0, 10, 100), p.Canvas().TargetRect())
}

func TestRemoveItem(t *testing.T) {
	p := newTestPlot(t)

	a := items.NewCurve("a")
	require.NoError(t, a.SetData([]float64{0, 1}, []float64{0, 1}))
	b := items.NewCurve("b")
	require.NoError(t, b.SetData([]float64{5, 20}, []float64{5, 20}))
	p.AddItem(a)
	p.AddItem(b)
	p.RemoveItem(b)

	assert.Equal(t, geom.NewRect(0, 0, 1, 1), p.Canvas().TargetRect())
}

func TestDragged_PansView(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.Canvas().SetRange(geom.NewRect(0, 0, 10, 10), false))

	before := p.Canvas().GraphRect()
	p.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 150)},
		Dragged:    fyne.Delta{DX: 50, DY: 0},
	})
	p.DragEnd()

	after := p.Canvas().GraphRect()
	// Dragging content right moves the visible range left.
	assert.Less(t, after.X0, before.X0)
	assert.Equal(t, before.Width(), after.Width())
}

func TestDragged_MovesROIInsteadOfPanning(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.Canvas().SetRange(geom.NewRect(0, 0, 10, 10), false))

	roi := NewROI(geom.NewRect(4, 4, 6, 6))
	p.AddROI(roi)

	rangeBefore := p.Canvas().GraphRect()
	roiBefore := roi.Rect()

	// Start the drag in the middle of the ROI body.
	w, h := p.Canvas().Size()
	tr := p.Canvas().Transform()
	px, py := tr.Apply(5, 5)
	require.True(t, px > 0 && px < w && py > 0 && py < h)

	p.Dragged(&fyne.DragEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(px+p.margins.left, py+p.margins.top)},
		Dragged:    fyne.Delta{DX: 10, DY: 0},
	})
	p.DragEnd()

	assert.Equal(t, rangeBefore, p.Canvas().GraphRect(), "view must not pan during ROI drag")
	assert.NotEqual(t, roiBefore, roi.Rect())
}

func TestScrolled_ZoomsIn(t *testing.T) {
	p := newTestPlot(t)
	require.NoError(t, p.Canvas().SetRange(geom.NewRect(0, 0, 10, 10), false))

	p.Scrolled(&fyne.ScrollEvent{
		PointEvent: fyne.PointEvent{Position: fyne.NewPos(200, 150)},
		Scrolled:   fyne.Delta{DY: 25},
	})

	assert.Less(t, p.Canvas().GraphRect().Width(), 10.0)
}

func TestTappedSecondary_RestoresAutoRange(t *testing.T) {
	p := newTestPlot(t)

	c := items.NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1}, []float64{0, 1}))
	p.AddItem(c)

	require.NoError(t, p.Canvas().SetRange(geom.NewRect(50, 50, 60, 60), false))
	p.TappedSecondary(&fyne.PointEvent{})

	x, y := p.Canvas().AutoRangeEnabled()
	assert.True(t, x)
	assert.True(t, y)
	assert.Equal(t, geom.NewRect(0, 0, 1, 1), p.Canvas().TargetRect())
}

func TestRenderer_BuildsObjects(t *testing.T) {
	p := newTestPlot(t)

	c := items.NewCurve("sig")
	require.NoError(t, c.SetData([]float64{0, 1, 2, 3}, []float64{0, 1, 0, 1}))
	p.AddItem(c)
	p.AddROI(NewROI(geom.NewRect(0.5, 0.2, 1.5, 0.8)))

	r := test.TempWidgetRenderer(t, p)
	r.Layout(fyne.NewSize(480, 360))
	r.Refresh()

	// Background, grid, curve segments, ROI and legend all contribute.
	assert.Greater(t, len(r.Objects()), 10)
}
