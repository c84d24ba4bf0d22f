package items

import (
	"math"

	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/series"
)

// Stem draws vertical lines from a baseline to each (x, y) point with a
// marker at the tip.
type Stem struct {
	base
	Line LineStyle
	// MarkerSize is the tip marker extent in pixels; zero draws no tip.
	MarkerSize float32
	// Baseline is the data value stems grow from.
	Baseline float64

	pts    []series.XY
	bounds geom.Rect
}

// NewStem returns an empty stem item anchored at 0.
func NewStem(name string) *Stem {
	return &Stem{base: newBase(name), Line: DefaultLine, MarkerSize: 4, bounds: emptyBounds()}
}

// SetData replaces the stem data. xs and ys must be the same length.
func (s *Stem) SetData(xs, ys []float64) error {
	if err := lengthsMatch(len(xs), "stem "+s.name, len(ys)); err != nil {
		return err
	}
	s.pts = series.FromSlices(xs, ys)
	s.recomputeBounds()
	s.changed()
	return nil
}

// Points returns the stored tips, owned by the item.
func (s *Stem) Points() []series.XY { return s.pts }

// Bounds includes the baseline so stems are never clipped by auto-range.
func (s *Stem) Bounds() geom.Rect { return s.bounds }

func (s *Stem) recomputeBounds() {
	r := series.Bounds(s.pts)
	if !r.IsFinite() {
		s.bounds = r
		return
	}
	r.Y0 = math.Min(r.Y0, s.Baseline)
	r.Y1 = math.Max(r.Y1, s.Baseline)
	s.bounds = r
}
