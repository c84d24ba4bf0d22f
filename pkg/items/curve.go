package items

import (
	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/series"
)

// Curve is a connected polyline through (x, y) data.
type Curve struct {
	base
	Line LineStyle

	pts    []series.XY
	bounds geom.Rect

	// Display cache, rebuilt lazily after SetData.
	display    []series.XY
	displayMax int
	dirty      bool

	maxDisplayPoints int
}

// NewCurve returns an empty curve with the default line style.
func NewCurve(name string) *Curve {
	return &Curve{base: newBase(name), Line: DefaultLine, bounds: emptyBounds(), maxDisplayPoints: 1000}
}

// SetData replaces the curve data. xs and ys must be the same length; on
// mismatch the error is returned immediately and the item is unchanged.
func (c *Curve) SetData(xs, ys []float64) error {
	if err := lengthsMatch(len(xs), "curve "+c.name, len(ys)); err != nil {
		return err
	}
	c.pts = series.FromSlices(xs, ys)
	c.bounds = series.Bounds(c.pts)
	c.dirty = true
	c.changed()
	return nil
}

// SetPoints replaces the curve data from pre-paired points. The slice is
// copied.
func (c *Curve) SetPoints(pts []series.XY) {
	c.pts = append(c.pts[:0:0], pts...)
	c.bounds = series.Bounds(c.pts)
	c.dirty = true
	c.changed()
}

// SetMaxDisplayPoints bounds the decimated display path length. Zero
// disables decimation.
func (c *Curve) SetMaxDisplayPoints(n int) {
	if n == c.maxDisplayPoints {
		return
	}
	c.maxDisplayPoints = n
	c.dirty = true
	c.changed()
}

// Len returns the number of stored points.
func (c *Curve) Len() int { return len(c.pts) }

// Bounds returns the data extent.
func (c *Curve) Bounds() geom.Rect { return c.bounds }

// DisplayPoints returns the decimated polyline used for rendering. Spikes
// survive decimation because buckets keep their min and max. The returned
// slice is owned by the curve and valid until the next SetData.
func (c *Curve) DisplayPoints() []series.XY {
	if !c.dirty && c.displayMax == c.maxDisplayPoints {
		return c.display
	}
	c.display = series.MinMaxDecimate(c.display, c.pts, c.maxDisplayPoints)
	c.displayMax = c.maxDisplayPoints
	c.dirty = false
	return c.display
}
