// Package series holds the numeric plumbing shared by plot items: XY
// point slices, bounds extraction, and display downsampling.
package series

import (
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// XY is a single data point.
type XY struct {
	X, Y float64
}

// FromSlices pairs separate x and y slices into points. The slices must be
// of equal length; callers validate that before converting.
func FromSlices(xs, ys []float64) []XY {
	pts := make([]XY, len(xs))
	for i := range xs {
		pts[i] = XY{X: xs[i], Y: ys[i]}
	}
	return pts
}

// Bounds returns the data extent of the points, skipping non-finite
// values. With no finite point the result is the inverted infinite
// rectangle, which geom.Rect treats as empty.
func Bounds(pts []XY) geom.Rect {
	r := geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	for _, p := range pts {
		if bad(p.X) || bad(p.Y) {
			continue
		}
		r.X0 = math.Min(r.X0, p.X)
		r.X1 = math.Max(r.X1, p.X)
		r.Y0 = math.Min(r.Y0, p.Y)
		r.Y1 = math.Max(r.Y1, p.Y)
	}
	return r
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// Downsample decimates src to at most maxPoints for display.
// Destination-based: reuses dst if it has sufficient capacity, otherwise
// allocates. If len(src) <= maxPoints the points are copied through.
func Downsample(dst, src []XY, maxPoints int) []XY {
	if maxPoints <= 0 || len(src) <= maxPoints {
		if cap(dst) >= len(src) {
			dst = dst[:len(src)]
			copy(dst, src)
			return dst
		}
		out := make([]XY, len(src))
		copy(out, src)
		return out
	}

	if cap(dst) >= maxPoints {
		dst = dst[:0]
	} else {
		dst = make([]XY, 0, maxPoints)
	}

	step := float64(len(src)) / float64(maxPoints)
	for i := 0; i < maxPoints; i++ {
		idx := int(float64(i) * step)
		if idx < len(src) {
			dst = append(dst, src[idx])
		}
	}
	return dst
}

// MinMaxDecimate reduces src to at most maxPoints while keeping the
// extreme values of every bucket, so spikes survive decimation. The output
// holds the min and max of each bucket in X order. maxPoints is rounded
// down to an even count of at least 2.
func MinMaxDecimate(dst, src []XY, maxPoints int) []XY {
	if maxPoints >= len(src) || maxPoints <= 0 {
		return Downsample(dst, src, maxPoints)
	}
	buckets := maxPoints / 2
	if buckets < 1 {
		buckets = 1
	}

	if cap(dst) >= buckets*2 {
		dst = dst[:0]
	} else {
		dst = make([]XY, 0, buckets*2)
	}

	step := float64(len(src)) / float64(buckets)
	for b := 0; b < buckets; b++ {
		lo := int(float64(b) * step)
		hi := int(float64(b+1) * step)
		if hi > len(src) {
			hi = len(src)
		}
		if lo >= hi {
			continue
		}
		min, max := src[lo], src[lo]
		for _, p := range src[lo:hi] {
			if p.Y < min.Y {
				min = p
			}
			if p.Y > max.Y {
				max = p
			}
		}
		if min.X <= max.X {
			dst = append(dst, min, max)
		} else {
			dst = append(dst, max, min)
		}
	}
	return dst
}
