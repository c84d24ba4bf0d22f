package plotwidget

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itohio/goplot/pkg/geom"
)

func testTransform() geom.Transform {
	// 0..10 data onto a 100x100 surface.
	return geom.FitRect(geom.NewRect(0, 0, 10, 10), 100, 100, false, false)
}

func TestROI_HitTest(t *testing.T) {
	roi := NewROI(geom.NewRect(2, 2, 8, 8))
	tr := testTransform()

	// Lower-left data corner (2,2) is pixel (20,80).
	assert.Equal(t, roiDragCorner00, roi.hitTest(tr, 20, 80))
	assert.Equal(t, roiDragCorner11, roi.hitTest(tr, 80, 20))
	// Center hits the body.
	assert.Equal(t, roiDragMove, roi.hitTest(tr, 50, 50))
	// Far outside hits nothing.
	assert.Equal(t, roiDragNone, roi.hitTest(tr, 5, 5))
}

func TestROI_DragMove(t *testing.T) {
	roi := NewROI(geom.NewRect(2, 2, 8, 8))
	roi.drag(roiDragMove, 1, -1)
	assert.Equal(t, geom.NewRect(3, 1, 9, 7), roi.Rect())
}

func TestROI_DragCornerAndNormalize(t *testing.T) {
	roi := NewROI(geom.NewRect(2, 2, 8, 8))
	var got geom.Rect
	roi.OnChanged(func(r geom.Rect) { got = r })

	// Drag the lower-left corner past the opposite edge.
	roi.drag(roiDragCorner00, 10, 0)
	roi.dragDone()

	require.Equal(t, got, roi.Rect())
	// Normalized back to a well-formed rectangle.
	assert.Equal(t, geom.NewRect(8, 2, 12, 8), roi.Rect())
}

func TestROI_SetRectNotifies(t *testing.T) {
	roi := NewROI(geom.NewRect(0, 0, 1, 1))
	calls := 0
	roi.OnChanged(func(geom.Rect) { calls++ })
	roi.SetRect(geom.NewRect(1, 1, 2, 2))
	assert.Equal(t, 1, calls)
	assert.Equal(t, geom.NewRect(1, 1, 2, 2), roi.Rect())
}
