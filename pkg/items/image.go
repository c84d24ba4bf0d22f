package items

import (
	"fmt"
	"image"
	"math"

	"github.com/itohio/goplot/pkg/colormap"
	"github.com/itohio/goplot/pkg/geom"
)

// Image renders a dense value grid through a color map. The grid occupies
// a rectangle in data coordinates; row 0 is the bottom row, matching the
// upward Y axis.
type Image struct {
	base

	data       []float64
	rows, cols int
	rect       geom.Rect

	cmap     colormap.Map
	min, max float64
	autoLevels bool

	rendered *image.NRGBA
	dirty    bool
}

// NewImage returns an empty image item using the grayscale map over the
// unit rectangle, with levels derived from the data.
func NewImage(name string) *Image {
	return &Image{
		base:       newBase(name),
		cmap:       colormap.Grayscale,
		rect:       geom.NewRect(0, 0, 1, 1),
		autoLevels: true,
	}
}

// SetData replaces the grid. len(data) must equal rows*cols; on mismatch
// the error is returned immediately and the item is unchanged.
func (im *Image) SetData(data []float64, rows, cols int) error {
	if rows <= 0 || cols <= 0 || len(data) != rows*cols {
		return fmt.Errorf("items: image %s: data length %d does not match %dx%d grid",
			im.name, len(data), rows, cols)
	}
	im.data = append(im.data[:0:0], data...)
	im.rows, im.cols = rows, cols
	if im.autoLevels {
		im.deriveLevels()
	}
	im.dirty = true
	im.changed()
	return nil
}

// SetRect places the grid in data coordinates.
func (im *Image) SetRect(r geom.Rect) {
	im.rect = r
	im.changed()
}

// SetColorMap switches the color map.
func (im *Image) SetColorMap(m colormap.Map) {
	im.cmap = m
	im.dirty = true
	im.changed()
}

// SetLevels fixes the data values mapped to the color map ends, disabling
// automatic level derivation.
func (im *Image) SetLevels(min, max float64) error {
	if bad(min) || bad(max) || min == max {
		return fmt.Errorf("items: image %s: bad levels [%v, %v]", im.name, min, max)
	}
	if min > max {
		min, max = max, min
	}
	im.min, im.max = min, max
	im.autoLevels = false
	im.dirty = true
	im.changed()
	return nil
}

// Levels returns the current mapping range.
func (im *Image) Levels() (min, max float64) { return im.min, im.max }

// Bounds is the placement rectangle.
func (im *Image) Bounds() geom.Rect {
	if im.rows == 0 {
		return geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	}
	return im.rect
}

// Rendered returns the grid rasterized through the color map, one pixel
// per cell. The image is cached until data, levels or map change.
func (im *Image) Rendered() *image.NRGBA {
	if im.rows == 0 {
		return nil
	}
	if im.rendered != nil && !im.dirty {
		return im.rendered
	}
	out := image.NewNRGBA(image.Rect(0, 0, im.cols, im.rows))
	span := im.max - im.min
	for r := 0; r < im.rows; r++ {
		for c := 0; c < im.cols; c++ {
			v := im.data[r*im.cols+c]
			t := 0.0
			if span != 0 && !bad(v) {
				t = (v - im.min) / span
			}
			// Grid row 0 is the bottom, image row 0 the top.
			out.SetNRGBA(c, im.rows-1-r, im.cmap.Lookup(t))
		}
	}
	im.rendered = out
	im.dirty = false
	return out
}

func (im *Image) deriveLevels() {
	min, max := math.Inf(1), math.Inf(-1)
	for _, v := range im.data {
		if bad(v) {
			continue
		}
		min = math.Min(min, v)
		max = math.Max(max, v)
	}
	if min > max {
		min, max = 0, 1
	}
	if min == max {
		max = min + 1
	}
	im.min, im.max = min, max
}
