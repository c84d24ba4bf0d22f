package geom

import (
	"math"
)

// Transform is the affine map between data coordinates and device pixels.
// Pixel space has its origin at the top-left corner with Y pointing down;
// data space has Y pointing up, so Sy is normally negative.
type Transform struct {
	Sx, Sy float64
	Tx, Ty float64
}

// FitRect builds the transform that maps graph onto a w x h pixel surface
// so that the graph center lands on the pixel center. invertX mirrors the
// X axis; invertY flips Y so that larger data values go down instead of up.
func FitRect(graph Rect, w, h float32, invertX, invertY bool) Transform {
	sx := float64(w) / graph.Width()
	sy := -float64(h) / graph.Height()
	if invertX {
		sx = -sx
	}
	if invertY {
		sy = -sy
	}
	return Transform{
		Sx: sx,
		Sy: sy,
		Tx: float64(w)/2 - sx*graph.CenterX(),
		Ty: float64(h)/2 - sy*graph.CenterY(),
	}
}

// Apply maps a data point to pixel coordinates.
func (t Transform) Apply(x, y float64) (px, py float32) {
	return float32(t.Sx*x + t.Tx), float32(t.Sy*y + t.Ty)
}

// Invert maps a pixel position back to data coordinates.
func (t Transform) Invert(px, py float32) (x, y float64) {
	return (float64(px) - t.Tx) / t.Sx, (float64(py) - t.Ty) / t.Sy
}

// InvertDelta maps a pixel displacement to a data displacement.
func (t Transform) InvertDelta(dx, dy float32) (x, y float64) {
	return float64(dx) / t.Sx, float64(dy) / t.Sy
}

// Default clip bounds for the auto-range padding fraction.
const (
	DefaultMinPadding = 0.02
	DefaultMaxPadding = 0.1
)

// PaddingFraction returns the relative auto-range padding for an axis that
// spans extentPx device pixels: 1/sqrt(extentPx) clipped to the default
// bounds. Small surfaces get proportionally more padding so labels and
// markers near the edge stay visible.
func PaddingFraction(extentPx float32) float64 {
	return PaddingFractionClipped(extentPx, DefaultMinPadding, DefaultMaxPadding)
}

// PaddingFractionClipped is PaddingFraction with caller-supplied clip
// bounds.
func PaddingFractionClipped(extentPx float32, minFrac, maxFrac float64) float64 {
	if extentPx <= 0 {
		return maxFrac
	}
	p := 1 / math.Sqrt(float64(extentPx))
	if p < minFrac {
		return minFrac
	}
	if p > maxFrac {
		return maxFrac
	}
	return p
}

// Padded expands the rectangle by the per-axis padding fraction derived
// from the pixel extents of the target surface.
func (r Rect) Padded(wPx, hPx float32) Rect {
	return r.PaddedClipped(wPx, hPx, DefaultMinPadding, DefaultMaxPadding)
}

// PaddedClipped is Padded with caller-supplied padding clip bounds.
func (r Rect) PaddedClipped(wPx, hPx float32, minFrac, maxFrac float64) Rect {
	px := PaddingFractionClipped(wPx, minFrac, maxFrac) * r.Width()
	py := PaddingFractionClipped(hPx, minFrac, maxFrac) * r.Height()
	return Rect{X0: r.X0 - px, Y0: r.Y0 - py, X1: r.X1 + px, Y1: r.Y1 + py}
}
