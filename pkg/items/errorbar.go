package items

import (
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// ErrorBar draws a center point with asymmetric vertical error whiskers.
type ErrorBar struct {
	base
	Line LineStyle
	// CapWidth is the whisker cap extent in pixels.
	CapWidth float32

	xs, ys   []float64
	low, high []float64 // error magnitudes below and above ys
	bounds   geom.Rect
}

// NewErrorBar returns an empty error-bar item.
func NewErrorBar(name string) *ErrorBar {
	return &ErrorBar{base: newBase(name), Line: DefaultLine, CapWidth: 6, bounds: emptyBounds()}
}

// SetData replaces the data. All four slices must be the same length; low
// and high are non-negative error magnitudes relative to ys.
func (e *ErrorBar) SetData(xs, ys, low, high []float64) error {
	if err := lengthsMatch(len(xs), "errorbar "+e.name, len(ys), len(low), len(high)); err != nil {
		return err
	}
	e.xs = append(e.xs[:0:0], xs...)
	e.ys = append(e.ys[:0:0], ys...)
	e.low = append(e.low[:0:0], low...)
	e.high = append(e.high[:0:0], high...)
	e.recomputeBounds()
	e.changed()
	return nil
}

// Data returns the stored slices, owned by the item.
func (e *ErrorBar) Data() (xs, ys, low, high []float64) {
	return e.xs, e.ys, e.low, e.high
}

// Bounds includes the whisker extents, not just the centers.
func (e *ErrorBar) Bounds() geom.Rect { return e.bounds }

func (e *ErrorBar) recomputeBounds() {
	r := geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	for i, x := range e.xs {
		if bad(x) || bad(e.ys[i]) || bad(e.low[i]) || bad(e.high[i]) {
			continue
		}
		r = r.Union(geom.NewRect(x, e.ys[i]-e.low[i], x, e.ys[i]+e.high[i]))
	}
	e.bounds = r
}
