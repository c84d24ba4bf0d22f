package items

import (
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// Bar draws vertical bars from a baseline to per-x heights.
type Bar struct {
	base
	Fill FillStyle
	Line LineStyle
	// Width is the bar width in data units.
	Width float64
	// Baseline is the data value bars grow from.
	Baseline float64

	xs, heights []float64
	bounds      geom.Rect
}

// NewBar returns an empty bar item with unit-width bars from 0.
func NewBar(name string) *Bar {
	return &Bar{
		base:   newBase(name),
		Fill:   FillStyle{Color: DefaultLine.Color},
		Line:   LineStyle{Color: DefaultLine.Color, Width: 1},
		Width:  0.8,
		bounds: emptyBounds(),
	}
}

// SetData replaces the bar data. xs and heights must be the same length.
func (b *Bar) SetData(xs, heights []float64) error {
	if err := lengthsMatch(len(xs), "bar "+b.name, len(heights)); err != nil {
		return err
	}
	b.xs = append(b.xs[:0:0], xs...)
	b.heights = append(b.heights[:0:0], heights...)
	b.recomputeBounds()
	b.changed()
	return nil
}

// Data returns the stored centers and heights, owned by the item.
func (b *Bar) Data() (xs, heights []float64) { return b.xs, b.heights }

// Bounds covers every bar including its width and the baseline.
func (b *Bar) Bounds() geom.Rect { return b.bounds }

func (b *Bar) recomputeBounds() {
	r := geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	half := b.Width / 2
	for i, x := range b.xs {
		h := b.heights[i]
		if bad(x) || bad(h) {
			continue
		}
		r = r.Union(geom.NewRect(x-half, b.Baseline, x+half, h))
	}
	b.bounds = r
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
