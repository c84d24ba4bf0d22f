package plotwidget

import (
	"github.com/itohio/goplot/pkg/config"
	"github.com/itohio/goplot/pkg/geom"
)

type roiDragMode int

const (
	roiDragNone roiDragMode = iota
	roiDragMove
	roiDragCorner00 // lower-left in data space
	roiDragCorner01
	roiDragCorner10
	roiDragCorner11
)

// ROI is a rectangular region of interest in data coordinates. It is
// moved by dragging its body and resized by dragging a corner handle.
type ROI struct {
	rect geom.Rect
	cfg  *config.Config

	onChanged func(geom.Rect)
}

// NewROI creates a region covering the given data rectangle.
func NewROI(r geom.Rect) *ROI {
	return &ROI{rect: r}
}

// Rect returns the current region in data coordinates.
func (r *ROI) Rect() geom.Rect { return r.rect }

// SetRect moves the region programmatically.
func (r *ROI) SetRect(rect geom.Rect) {
	r.rect = rect
	r.notify()
}

// OnChanged registers a callback fired when interactive dragging releases
// the region or SetRect is called.
func (r *ROI) OnChanged(fn func(geom.Rect)) { r.onChanged = fn }

func (r *ROI) notify() {
	if r.onChanged != nil {
		r.onChanged(r.rect)
	}
}

func (r *ROI) handleSize() float32 {
	if r.cfg != nil && r.cfg.ROI.HandleSize > 0 {
		return r.cfg.ROI.HandleSize
	}
	return 8
}

// hitTest classifies a pixel position against the region: a corner handle
// wins over the body.
func (r *ROI) hitTest(tr geom.Transform, px, py float32) roiDragMode {
	h := r.handleSize()

	corners := [...]struct {
		x, y float64
		mode roiDragMode
	}{
		{r.rect.X0, r.rect.Y0, roiDragCorner00},
		{r.rect.X0, r.rect.Y1, roiDragCorner01},
		{r.rect.X1, r.rect.Y0, roiDragCorner10},
		{r.rect.X1, r.rect.Y1, roiDragCorner11},
	}
	for _, c := range corners {
		cx, cy := tr.Apply(c.x, c.y)
		if abs32(px-cx) <= h && abs32(py-cy) <= h {
			return c.mode
		}
	}

	x, y := tr.Invert(px, py)
	if r.rect.Contains(x, y) {
		return roiDragMove
	}
	return roiDragNone
}

// drag applies a data-space displacement for the active mode.
func (r *ROI) drag(mode roiDragMode, dx, dy float64) {
	switch mode {
	case roiDragMove:
		r.rect = r.rect.Translated(dx, dy)
	case roiDragCorner00:
		r.rect.X0 += dx
		r.rect.Y0 += dy
	case roiDragCorner01:
		r.rect.X0 += dx
		r.rect.Y1 += dy
	case roiDragCorner10:
		r.rect.X1 += dx
		r.rect.Y0 += dy
	case roiDragCorner11:
		r.rect.X1 += dx
		r.rect.Y1 += dy
	}
}

// dragDone normalizes a possibly inside-out rectangle and notifies.
func (r *ROI) dragDone() {
	r.rect = geom.NewRect(r.rect.X0, r.rect.Y0, r.rect.X1, r.rect.Y1)
	r.notify()
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
