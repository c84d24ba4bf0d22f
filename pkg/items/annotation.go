package items

import (
	"image/color"
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// AnchorPoint positions annotation text relative to its data point.
type AnchorPoint int

const (
	AnchorTopLeft AnchorPoint = iota
	AnchorTopRight
	AnchorBottomLeft
	AnchorBottomRight
	AnchorCenter
)

// Annotation pins a text label to a data coordinate.
type Annotation struct {
	base
	Text     string
	Color    color.NRGBA
	TextSize float32
	Anchor   AnchorPoint

	x, y float64
}

// NewAnnotation returns a label anchored top-left of the given point.
func NewAnnotation(text string, x, y float64) *Annotation {
	return &Annotation{
		base:     newBase(text),
		Text:     text,
		Color:    color.NRGBA{R: 200, G: 200, B: 200, A: 255},
		TextSize: 12,
		x:        x,
		y:        y,
	}
}

// SetPos moves the anchor point.
func (a *Annotation) SetPos(x, y float64) {
	a.x, a.y = x, y
	a.changed()
}

// Pos returns the anchor point.
func (a *Annotation) Pos() (x, y float64) { return a.x, a.y }

// Bounds is the anchor point itself; the rendered text extent is a pixel
// quantity and does not take part in auto-ranging.
func (a *Annotation) Bounds() geom.Rect {
	if math.IsNaN(a.x) || math.IsNaN(a.y) || math.IsInf(a.x, 0) || math.IsInf(a.y, 0) {
		return geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	}
	return geom.Rect{X0: a.x, Y0: a.y, X1: a.x, Y1: a.y}
}
