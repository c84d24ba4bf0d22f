// Package items provides the plot item family hosted by a canvas: curves,
// scatter points, bars, error bars, candlesticks, stems, annotations and
// color-mapped images. Items validate their data eagerly on SetData and
// cache derived display state until the data changes.
package items

import (
	"fmt"
	"image/color"
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// emptyBounds is the inverted infinite rectangle reported by items with no
// data, which canvases skip during auto-range.
func emptyBounds() geom.Rect {
	return geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
}

// LineStyle describes stroked geometry.
type LineStyle struct {
	Color color.NRGBA
	Width float32
}

// FillStyle describes filled geometry.
type FillStyle struct {
	Color color.NRGBA
}

// DefaultLine is the stroke used when an item is created without style.
var DefaultLine = LineStyle{Color: color.NRGBA{R: 255, G: 165, B: 0, A: 255}, Width: 1.5}

// base carries the state shared by every item: identity for legends,
// visibility, and the change callback wired to the owning canvas.
type base struct {
	name     string
	visible  bool
	onChange func()
}

func newBase(name string) base {
	return base{name: name, visible: true}
}

// Name returns the legend label.
func (b *base) Name() string { return b.name }

// SetName sets the legend label.
func (b *base) SetName(name string) { b.name = name }

// Visible reports whether the item is drawn and auto-ranged.
func (b *base) Visible() bool { return b.visible }

// SetVisible toggles the item and reports the change upstream.
func (b *base) SetVisible(v bool) {
	if b.visible == v {
		return
	}
	b.visible = v
	b.changed()
}

// OnChange registers the owning canvas's invalidation hook. The canvas is
// referenced only through this callback, so dropping the item releases it.
func (b *base) OnChange(fn func()) { b.onChange = fn }

func (b *base) changed() {
	if b.onChange != nil {
		b.onChange()
	}
}

func lengthsMatch(n int, name string, lens ...int) error {
	for _, l := range lens {
		if l != n {
			return fmt.Errorf("items: %s: mismatched data lengths %d and %d", name, n, l)
		}
	}
	return nil
}
