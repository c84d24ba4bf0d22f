package items

import (
	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/series"
)

// MarkerShape selects how scatter points are drawn.
type MarkerShape int

const (
	MarkerCircle MarkerShape = iota
	MarkerSquare
	MarkerCross
)

// Scatter draws unconnected markers at (x, y) data.
type Scatter struct {
	base
	Line  LineStyle
	Shape MarkerShape
	// Size is the marker extent in pixels.
	Size float32

	pts    []series.XY
	bounds geom.Rect
}

// NewScatter returns an empty scatter item.
func NewScatter(name string) *Scatter {
	return &Scatter{base: newBase(name), Line: DefaultLine, Size: 5, bounds: emptyBounds()}
}

// SetData replaces the scatter data. xs and ys must be the same length.
func (s *Scatter) SetData(xs, ys []float64) error {
	if err := lengthsMatch(len(xs), "scatter "+s.name, len(ys)); err != nil {
		return err
	}
	s.pts = series.FromSlices(xs, ys)
	s.bounds = series.Bounds(s.pts)
	s.changed()
	return nil
}

// Points returns the stored points, owned by the item.
func (s *Scatter) Points() []series.XY { return s.pts }

// Bounds returns the data extent.
func (s *Scatter) Bounds() geom.Rect { return s.bounds }
