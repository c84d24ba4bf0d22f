// Package canvas implements the view-box engine behind every plot: the
// mapping between data coordinates and device pixels, auto-ranging over
// the hosted items, mouse-driven pan/zoom, and range linking between
// sibling canvases.
//
// A Canvas is not safe for concurrent use. All methods are expected to run
// on the UI event-loop goroutine; re-entrancy (an auto-range triggering a
// listener that sets a range) is handled with guard flags, not locks.
package canvas

import (
	"errors"
	"math"

	"github.com/itohio/goplot/pkg/geom"
)

// Item is anything a Canvas can auto-range over.
type Item interface {
	// Bounds returns the item's extent in data coordinates. Items with
	// nothing to show return a non-finite rectangle.
	Bounds() geom.Rect
	// Visible reports whether the item takes part in rendering and
	// auto-ranging.
	Visible() bool
}

// ErrBadRange is returned when a requested range contains NaN or Inf.
var ErrBadRange = errors.New("canvas: range bounds must be finite")

// Canvas maintains the displayed data rectangle and its affine mapping to
// a pixel surface.
type Canvas struct {
	graphRect  geom.Rect // what is displayed, after padding
	targetRect geom.Rect // what was requested, before padding
	transform  geom.Transform

	width, height    float32
	invertX, invertY bool
	autoX, autoY     bool
	padMin, padMax   float64

	items []Item

	linkedX, linkedY []*Canvas
	blockLinks       bool
	updating         bool
	closed           bool

	listeners []func(geom.Rect)
}

// New returns a canvas showing the unit rectangle with auto-ranging
// enabled on both axes.
func New() *Canvas {
	c := &Canvas{
		graphRect:  geom.NewRect(0, 0, 1, 1),
		targetRect: geom.NewRect(0, 0, 1, 1),
		autoX:      true,
		autoY:      true,
		padMin:     geom.DefaultMinPadding,
		padMax:     geom.DefaultMaxPadding,
	}
	c.updateTransform()
	return c
}

// SetPaddingLimits sets the clip bounds for the auto-range padding
// fraction. Non-finite or inverted bounds are ignored.
func (c *Canvas) SetPaddingLimits(minFrac, maxFrac float64) {
	if bad(minFrac) || bad(maxFrac) || minFrac < 0 || maxFrac < minFrac {
		return
	}
	c.padMin, c.padMax = minFrac, maxFrac
}

// GraphRect returns the data rectangle currently displayed.
func (c *Canvas) GraphRect() geom.Rect { return c.graphRect }

// TargetRect returns the requested rectangle before padding.
func (c *Canvas) TargetRect() geom.Rect { return c.targetRect }

// Transform returns the current data-to-pixel map.
func (c *Canvas) Transform() geom.Transform { return c.transform }

// Size returns the pixel surface extent.
func (c *Canvas) Size() (w, h float32) { return c.width, c.height }

// SetInverted sets the axis inversion flags.
func (c *Canvas) SetInverted(x, y bool) {
	if c.invertX == x && c.invertY == y {
		return
	}
	c.invertX = x
	c.invertY = y
	c.updateTransform()
	c.notify()
}

// Resize adapts the transform to a new pixel surface. Auto-ranged axes are
// recomputed because the padding fraction depends on the pixel extent.
func (c *Canvas) Resize(w, h float32) {
	if w == c.width && h == c.height {
		return
	}
	c.width, c.height = w, h
	c.updateTransform()
	if c.autoX || c.autoY {
		c.UpdateAutoRange()
	}
}

// OnRangeChanged registers a listener invoked with the new graph rectangle
// after every range change.
func (c *Canvas) OnRangeChanged(fn func(geom.Rect)) {
	c.listeners = append(c.listeners, fn)
}

// AddItem registers an item for auto-ranging. Adding re-runs auto-range on
// the enabled axes.
func (c *Canvas) AddItem(it Item) {
	c.items = append(c.items, it)
	c.UpdateAutoRange()
}

// RemoveItem drops an item previously added with AddItem.
func (c *Canvas) RemoveItem(it Item) {
	for i, have := range c.items {
		if have == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			break
		}
	}
	c.UpdateAutoRange()
}

// Items returns the registered items.
func (c *Canvas) Items() []Item { return c.items }

// ItemChanged tells the canvas that an item's data or visibility changed,
// re-running auto-range.
func (c *Canvas) ItemChanged() { c.UpdateAutoRange() }

// EnableAutoRange turns auto-ranging per axis on or off. Enabling an axis
// recomputes it immediately.
func (c *Canvas) EnableAutoRange(x, y bool) {
	c.autoX, c.autoY = x, y
	if x || y {
		c.UpdateAutoRange()
	}
}

// AutoRangeEnabled reports the per-axis auto-range flags.
func (c *Canvas) AutoRangeEnabled() (x, y bool) { return c.autoX, c.autoY }

// SetRange requests both axis ranges. Padding, when enabled, expands the
// displayed rectangle by the pixel-extent dependent fraction; the target
// rectangle always records the unpadded request. Setting a range disables
// auto-ranging on both axes.
func (c *Canvas) SetRange(r geom.Rect, addPadding bool) error {
	if !r.IsFinite() {
		return ErrBadRange
	}
	c.autoX, c.autoY = false, false
	c.applyTarget(r.Regularize(c.graphRect), addPadding, true, true)
	return nil
}

// SetXRange requests the X axis range, leaving Y untouched. Disables X
// auto-ranging.
func (c *Canvas) SetXRange(min, max float64, addPadding bool) error {
	if bad(min) || bad(max) {
		return ErrBadRange
	}
	c.autoX = false
	r := geom.Rect{X0: min, Y0: c.targetRect.Y0, X1: max, Y1: c.targetRect.Y1}
	c.applyTarget(r.Regularize(c.graphRect), addPadding, true, false)
	return nil
}

// SetYRange requests the Y axis range, leaving X untouched. Disables Y
// auto-ranging.
func (c *Canvas) SetYRange(min, max float64, addPadding bool) error {
	if bad(min) || bad(max) {
		return ErrBadRange
	}
	c.autoY = false
	r := geom.Rect{X0: c.targetRect.X0, Y0: min, X1: c.targetRect.X1, Y1: max}
	c.applyTarget(r.Regularize(c.graphRect), addPadding, false, true)
	return nil
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }

// applyTarget installs a new target rectangle and derives the graph
// rectangle from it, padding only the axes that changed.
func (c *Canvas) applyTarget(target geom.Rect, addPadding, changedX, changedY bool) {
	c.targetRect = target
	next := c.graphRect
	padded := target
	if addPadding {
		padded = target.PaddedClipped(c.width, c.height, c.padMin, c.padMax)
	}
	if changedX {
		next.X0, next.X1 = padded.X0, padded.X1
	}
	if changedY {
		next.Y0, next.Y1 = padded.Y0, padded.Y1
	}
	c.graphRect = next
	c.updateTransform()
	c.notify()
	c.propagate(changedX, changedY)
}

// UpdateAutoRange recomputes the enabled axes from the union of visible
// item bounds. It is idempotent for an unchanged item set and a no-op when
// nothing visible contributes finite bounds.
func (c *Canvas) UpdateAutoRange() {
	if c.updating || (!c.autoX && !c.autoY) {
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	bounds := geom.Rect{X0: math.Inf(1), Y0: math.Inf(1), X1: math.Inf(-1), Y1: math.Inf(-1)}
	any := false
	for _, it := range c.items {
		if !it.Visible() {
			continue
		}
		b := it.Bounds()
		if !b.IsFinite() {
			continue
		}
		bounds = bounds.Union(b)
		any = true
	}
	if !any {
		return
	}

	target := c.targetRect
	if c.autoX {
		target.X0, target.X1 = bounds.X0, bounds.X1
	}
	if c.autoY {
		target.Y0, target.Y1 = bounds.Y0, bounds.Y1
	}
	// Regularizing against the target, not the padded graph rect, keeps
	// repeated auto-range calls convergent for degenerate item bounds.
	c.applyTarget(target.Regularize(c.targetRect), true, c.autoX, c.autoY)
}

// Pan shifts the view by a pixel displacement. Panning disables
// auto-ranging on the axes it moves.
func (c *Canvas) Pan(dxPx, dyPx float32) {
	// Before the first Resize the transform is unset and cannot be
	// inverted.
	if c.width <= 0 || c.height <= 0 || c.graphRect.IsEmpty() {
		return
	}
	dx, dy := c.transform.InvertDelta(dxPx, dyPx)
	if dxPx != 0 {
		c.autoX = false
	}
	if dyPx != 0 {
		c.autoY = false
	}
	c.targetRect = c.targetRect.Translated(dx, dy)
	c.graphRect = c.graphRect.Translated(dx, dy)
	c.updateTransform()
	c.notify()
	c.propagate(dxPx != 0, dyPx != 0)
}

// ZoomAt scales the view about a pixel position. factor > 1 zooms in.
// Zooming disables auto-ranging on both axes.
func (c *Canvas) ZoomAt(factor float64, px, py float32) {
	if factor <= 0 || c.width <= 0 || c.height <= 0 || c.graphRect.IsEmpty() {
		return
	}
	cx, cy := c.transform.Invert(px, py)
	c.autoX, c.autoY = false, false
	c.graphRect = c.graphRect.ScaledAround(cx, cy, 1/factor, 1/factor)
	c.targetRect = c.graphRect
	c.updateTransform()
	c.notify()
	c.propagate(true, true)
}

// LinkXTo makes other follow this canvas's X range. The edge is
// one-directional; link both ways for mutual following. The peer is
// brought in sync immediately.
func (c *Canvas) LinkXTo(other *Canvas) {
	if other == nil || other == c {
		return
	}
	c.linkedX = append(c.linkedX, other)
	c.propagate(true, false)
}

// LinkYTo makes other follow this canvas's Y range.
func (c *Canvas) LinkYTo(other *Canvas) {
	if other == nil || other == c {
		return
	}
	c.linkedY = append(c.linkedY, other)
	c.propagate(false, true)
}

// UnlinkX removes all X link edges originating here.
func (c *Canvas) UnlinkX() { c.linkedX = nil }

// UnlinkY removes all Y link edges originating here.
func (c *Canvas) UnlinkY() { c.linkedY = nil }

// Close detaches the canvas from its link graph. Peers drop closed
// canvases lazily on the next propagation.
func (c *Canvas) Close() {
	c.closed = true
	c.linkedX = nil
	c.linkedY = nil
	c.listeners = nil
	c.items = nil
}

// propagate pushes the changed axis ranges to linked canvases. The peer's
// blockLinks flag is held during the update so mutually linked canvases
// settle at call depth 1 instead of recursing.
func (c *Canvas) propagate(changedX, changedY bool) {
	if c.blockLinks {
		return
	}
	if changedX {
		c.linkedX = c.pushRange(c.linkedX, func(peer *Canvas) {
			peer.SetXRange(c.targetRect.X0, c.targetRect.X1, false)
		})
	}
	if changedY {
		c.linkedY = c.pushRange(c.linkedY, func(peer *Canvas) {
			peer.SetYRange(c.targetRect.Y0, c.targetRect.Y1, false)
		})
	}
}

func (c *Canvas) pushRange(peers []*Canvas, set func(*Canvas)) []*Canvas {
	alive := peers[:0]
	for _, peer := range peers {
		if peer.closed {
			continue
		}
		alive = append(alive, peer)
		peer.blockLinks = true
		set(peer)
		peer.blockLinks = false
	}
	return alive
}

func (c *Canvas) updateTransform() {
	if c.width <= 0 || c.height <= 0 || c.graphRect.IsEmpty() {
		return
	}
	c.transform = geom.FitRect(c.graphRect, c.width, c.height, c.invertX, c.invertY)
}

func (c *Canvas) notify() {
	for _, fn := range c.listeners {
		fn(c.graphRect)
	}
}
