// Package plotwidget provides the interactive Fyne widget hosting a plot:
// a pannable, zoomable canvas with axes, grid, legend and ROIs, rendering
// the item family from pkg/items.
package plotwidget

import (
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
	"github.com/chewxy/math32"

	"github.com/itohio/goplot/pkg/canvas"
	"github.com/itohio/goplot/pkg/config"
)

// Item is what the widget can host: an auto-rangeable item that also
// reports changes so the widget can refresh.
type Item interface {
	canvas.Item
	Name() string
	OnChange(func())
}

// PlotWidget is a custom Fyne widget displaying an interactive 2D plot.
type PlotWidget struct {
	widget.BaseWidget

	cfg *config.Config

	// Data (protected by mu)
	mu    sync.RWMutex
	cv    *canvas.Canvas
	items []Item
	rois  []*ROI

	xLabel, yLabel string
	showLegend     bool

	// Interaction state
	dragging *ROI
	dragMode roiDragMode

	margins margins
}

type margins struct {
	left, right, top, bottom float32
}

// New creates a plot widget with the given configuration. A nil cfg uses
// defaults.
func New(cfg *config.Config) *PlotWidget {
	if cfg == nil {
		cfg = config.Default()
	}
	p := &PlotWidget{
		cfg:        cfg,
		cv:         canvas.New(),
		showLegend: cfg.Legend.Show,
		margins:    margins{left: 60, right: 20, top: 20, bottom: 40},
	}
	p.cv.EnableAutoRange(cfg.Canvas.AutoRange, cfg.Canvas.AutoRange)
	p.cv.SetPaddingLimits(cfg.Canvas.MinPadding, cfg.Canvas.MaxPadding)
	p.ExtendBaseWidget(p)
	p.Refresh()
	return p
}

// Canvas exposes the view-box engine for range control and linking.
// Callers must use it from the UI goroutine only.
func (p *PlotWidget) Canvas() *canvas.Canvas { return p.cv }

// AddItem hosts an item on the plot and wires its change reporting.
func (p *PlotWidget) AddItem(it Item) {
	p.mu.Lock()
	p.items = append(p.items, it)
	p.mu.Unlock()

	it.OnChange(func() {
		p.mu.Lock()
		p.cv.ItemChanged()
		p.mu.Unlock()
		p.Refresh()
	})
	p.mu.Lock()
	p.cv.AddItem(it)
	p.mu.Unlock()
	p.Refresh()
}

// RemoveItem drops an item from the plot.
func (p *PlotWidget) RemoveItem(it Item) {
	p.mu.Lock()
	for i, have := range p.items {
		if have == it {
			p.items = append(p.items[:i], p.items[i+1:]...)
			break
		}
	}
	p.cv.RemoveItem(it)
	p.mu.Unlock()

	it.OnChange(nil)
	p.Refresh()
}

// AddROI places a region of interest on the plot.
func (p *PlotWidget) AddROI(r *ROI) {
	p.mu.Lock()
	r.cfg = p.cfg
	p.rois = append(p.rois, r)
	p.mu.Unlock()
	p.Refresh()
}

// RemoveROI drops a region of interest.
func (p *PlotWidget) RemoveROI(r *ROI) {
	p.mu.Lock()
	for i, have := range p.rois {
		if have == r {
			p.rois = append(p.rois[:i], p.rois[i+1:]...)
			break
		}
	}
	p.mu.Unlock()
	p.Refresh()
}

// SetLabels sets the axis captions.
func (p *PlotWidget) SetLabels(x, y string) {
	p.mu.Lock()
	p.xLabel, p.yLabel = x, y
	p.mu.Unlock()
	p.Refresh()
}

// SetLegendVisible toggles the legend.
func (p *PlotWidget) SetLegendVisible(v bool) {
	p.mu.Lock()
	p.showLegend = v
	p.mu.Unlock()
	p.Refresh()
}

// plotToWidget and widgetToPlot translate between widget coordinates and
// the plot area the canvas transform covers.
func (p *PlotWidget) widgetToPlot(pos fyne.Position) (float32, float32) {
	return pos.X - p.margins.left, pos.Y - p.margins.top
}

// Dragged pans the view, unless the drag started on an ROI handle or body,
// which moves or resizes that ROI instead.
func (p *PlotWidget) Dragged(ev *fyne.DragEvent) {
	p.mu.Lock()
	px, py := p.widgetToPlot(ev.Position)
	tr := p.cv.Transform()

	if p.dragging == nil {
		for _, r := range p.rois {
			if mode := r.hitTest(tr, px, py); mode != roiDragNone {
				p.dragging = r
				p.dragMode = mode
				break
			}
		}
	}

	if p.dragging != nil {
		dx, dy := tr.InvertDelta(ev.Dragged.DX, ev.Dragged.DY)
		p.dragging.drag(p.dragMode, dx, dy)
		p.mu.Unlock()
		p.Refresh()
		return
	}

	p.cv.Pan(-ev.Dragged.DX, -ev.Dragged.DY)
	p.mu.Unlock()
	p.Refresh()
}

// DragEnd finishes an ROI drag or pan.
func (p *PlotWidget) DragEnd() {
	p.mu.Lock()
	if p.dragging != nil {
		p.dragging.dragDone()
		p.dragging = nil
		p.dragMode = roiDragNone
	}
	p.mu.Unlock()
}

// Scrolled zooms about the cursor. Scrolling up zooms in.
func (p *PlotWidget) Scrolled(ev *fyne.ScrollEvent) {
	p.mu.Lock()
	px, py := p.widgetToPlot(ev.Position)
	factor := float64(math32.Pow(1.1, ev.Scrolled.DY/25))
	p.cv.ZoomAt(factor, px, py)
	p.mu.Unlock()
	p.Refresh()
}

// Tapped is a no-op; it exists so the widget receives pointer events.
func (p *PlotWidget) Tapped(*fyne.PointEvent) {}

// TappedSecondary restores auto-ranging, like a right-click reset.
func (p *PlotWidget) TappedSecondary(*fyne.PointEvent) {
	p.mu.Lock()
	p.cv.EnableAutoRange(true, true)
	p.mu.Unlock()
	p.Refresh()
}

// CreateRenderer creates the widget renderer.
func (p *PlotWidget) CreateRenderer() fyne.WidgetRenderer {
	return newRenderer(p)
}
