package items

import (
	"fmt"
	"image/color"
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// Candlestick draws OHLC candles: a high-low wick with an open-close body.
type Candlestick struct {
	base
	// Rising and Falling fill the body depending on close vs open.
	Rising  FillStyle
	Falling FillStyle
	Wick    LineStyle
	// Width is the body width in data units.
	Width float64

	ts                      []float64
	open, high, low, closeV []float64
	bounds                  geom.Rect
}

// NewCandlestick returns an empty candlestick item.
func NewCandlestick(name string) *Candlestick {
	return &Candlestick{
		base:    newBase(name),
		Rising:  FillStyle{Color: color.NRGBA{R: 0, G: 180, B: 80, A: 255}},
		Falling: FillStyle{Color: color.NRGBA{R: 220, G: 50, B: 50, A: 255}},
		Wick:    LineStyle{Color: color.NRGBA{R: 150, G: 150, B: 150, A: 255}, Width: 1},
		Width:   0.6,
		bounds:  emptyBounds(),
	}
}

// SetData replaces the candle data. All five slices must be the same
// length, and every candle must satisfy low <= open,close <= high.
func (c *Candlestick) SetData(ts, open, high, low, closeV []float64) error {
	if err := lengthsMatch(len(ts), "candlestick "+c.name, len(open), len(high), len(low), len(closeV)); err != nil {
		return err
	}
	for i := range ts {
		if bad(ts[i]) || bad(open[i]) || bad(high[i]) || bad(low[i]) || bad(closeV[i]) {
			continue
		}
		if low[i] > high[i] || open[i] < low[i] || open[i] > high[i] || closeV[i] < low[i] || closeV[i] > high[i] {
			return fmt.Errorf("items: candlestick %s: candle %d violates low <= open,close <= high", c.name, i)
		}
	}
	c.ts = append(c.ts[:0:0], ts...)
	c.open = append(c.open[:0:0], open...)
	c.high = append(c.high[:0:0], high...)
	c.low = append(c.low[:0:0], low...)
	c.closeV = append(c.closeV[:0:0], closeV...)
	c.recomputeBounds()
	c.changed()
	return nil
}

// Data returns the stored slices, owned by the item.
func (c *Candlestick) Data() (ts, open, high, low, closeV []float64) {
	return c.ts, c.open, c.high, c.low, c.closeV
}

// Bounds covers the full wick extent of every candle.
func (c *Candlestick) Bounds() geom.Rect { return c.bounds }

func (c *Candlestick) recomputeBounds() {
	r := geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	half := c.Width / 2
	for i, t := range c.ts {
		if bad(t) || bad(c.low[i]) || bad(c.high[i]) {
			continue
		}
		r = r.Union(geom.NewRect(t-half, c.low[i], t+half, c.high[i]))
	}
	c.bounds = r
}
