package geom

import "math"

// Rect is an axis-aligned rectangle in data coordinates with the Y axis
// pointing up. X0/Y0 is the lower-left corner, X1/Y1 the upper-right.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the rectangle spanning the two ranges, normalizing the
// order of the bounds.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x1 < x0 {
		x0, x1 = x1, x0
	}
	if y1 < y0 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the X extent.
func (r Rect) Width() float64 { return r.X1 - r.X0 }

// Height returns the Y extent.
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }

// CenterX returns the midpoint of the X range.
func (r Rect) CenterX() float64 { return (r.X0 + r.X1) / 2 }

// CenterY returns the midpoint of the Y range.
func (r Rect) CenterY() float64 { return (r.Y0 + r.Y1) / 2 }

// IsFinite reports whether all four bounds are finite numbers.
func (r Rect) IsFinite() bool {
	for _, v := range [...]float64{r.X0, r.Y0, r.X1, r.Y1} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// IsEmpty reports whether the rectangle cannot host a transform: non-finite
// bounds or zero extent along either axis.
func (r Rect) IsEmpty() bool {
	return !r.IsFinite() || r.Width() == 0 || r.Height() == 0
}

// Contains reports whether the point lies inside or on the boundary.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X0 && x <= r.X1 && y >= r.Y0 && y <= r.Y1
}

// Union returns the smallest rectangle covering r and o. Non-finite inputs
// are ignored in favor of the other operand.
func (r Rect) Union(o Rect) Rect {
	if !r.IsFinite() {
		return o
	}
	if !o.IsFinite() {
		return r
	}
	return Rect{
		X0: math.Min(r.X0, o.X0),
		Y0: math.Min(r.Y0, o.Y0),
		X1: math.Max(r.X1, o.X1),
		Y1: math.Max(r.Y1, o.Y1),
	}
}

// Translated returns the rectangle shifted by (dx, dy) in data units.
func (r Rect) Translated(dx, dy float64) Rect {
	return Rect{X0: r.X0 + dx, Y0: r.Y0 + dy, X1: r.X1 + dx, Y1: r.Y1 + dy}
}

// ScaledAround returns the rectangle with both extents scaled by the given
// factors about the fixed point (cx, cy).
func (r Rect) ScaledAround(cx, cy, fx, fy float64) Rect {
	return Rect{
		X0: cx + (r.X0-cx)*fx,
		Y0: cy + (r.Y0-cy)*fy,
		X1: cx + (r.X1-cx)*fx,
		Y1: cy + (r.Y1-cy)*fy,
	}
}

// Regularize repairs a requested rectangle so it can back a transform.
// A zero-width or zero-height range is expanded symmetrically around the
// requested value by half of the previous extent, or by 0.5 each way when
// the previous extent was also zero. Non-finite bounds are taken from prev.
func (r Rect) Regularize(prev Rect) Rect {
	out := r
	if math.IsNaN(out.X0) || math.IsInf(out.X0, 0) {
		out.X0 = prev.X0
	}
	if math.IsNaN(out.X1) || math.IsInf(out.X1, 0) {
		out.X1 = prev.X1
	}
	if math.IsNaN(out.Y0) || math.IsInf(out.Y0, 0) {
		out.Y0 = prev.Y0
	}
	if math.IsNaN(out.Y1) || math.IsInf(out.Y1, 0) {
		out.Y1 = prev.Y1
	}
	if out.X1 < out.X0 {
		out.X0, out.X1 = out.X1, out.X0
	}
	if out.Y1 < out.Y0 {
		out.Y0, out.Y1 = out.Y1, out.Y0
	}
	if out.Width() == 0 {
		half := prev.Width() / 2
		if half == 0 {
			half = 0.5
		}
		out.X0 -= half
		out.X1 += half
	}
	if out.Height() == 0 {
		half := prev.Height() / 2
		if half == 0 {
			half = 0.5
		}
		out.Y0 -= half
		out.Y1 += half
	}
	return out
}
