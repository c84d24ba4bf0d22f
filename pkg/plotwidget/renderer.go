package plotwidget

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"

	"github.com/itohio/goplot/pkg/config"
	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/items"
	"github.com/itohio/goplot/pkg/series"
	"github.com/itohio/goplot/pkg/ticks"
)

// plotRenderer renders the plot widget.
type plotRenderer struct {
	plot *PlotWidget

	bg *fynecanvas.Rectangle

	// Objects list for Fyne, rebuilt on every Refresh.
	objects []fyne.CanvasObject

	// Track last size to detect changes.
	lastSize fyne.Size

	// Cached theme colors parsed from config.
	fg, grid, gridMinor color.NRGBA
}

func newRenderer(p *PlotWidget) *plotRenderer {
	bgColor := mustColor(p.cfg.Theme.Background)
	bg := fynecanvas.NewRectangle(bgColor)
	fg := mustColor(p.cfg.Theme.Foreground)
	grid := mustColor(p.cfg.Theme.Grid)
	gridMinor := grid
	gridMinor.A /= 2
	return &plotRenderer{
		plot:      p,
		bg:        bg,
		objects:   []fyne.CanvasObject{bg},
		fg:        fg,
		grid:      grid,
		gridMinor: gridMinor,
	}
}

func mustColor(hex string) color.NRGBA {
	c, err := config.ParseColor(hex)
	if err != nil {
		return color.NRGBA{R: 128, G: 128, B: 128, A: 255}
	}
	return c
}

// MinSize returns the minimum size of the widget.
func (r *plotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 300)
}

// Layout arranges the widget components and feeds the new plot area size
// into the canvas transform.
func (r *plotRenderer) Layout(size fyne.Size) {
	r.bg.Resize(size)

	if r.lastSize != size {
		r.lastSize = size
		m := r.plot.margins
		r.plot.mu.Lock()
		r.plot.cv.Resize(size.Width-m.left-m.right, size.Height-m.top-m.bottom)
		r.plot.mu.Unlock()
		r.plot.BaseWidget.Refresh()
	}
}

// Refresh rebuilds the canvas object list from the current data.
func (r *plotRenderer) Refresh() {
	p := r.plot
	p.mu.RLock()
	defer p.mu.RUnlock()

	size := p.Size()
	if size.Width == 0 || size.Height == 0 {
		return
	}
	m := p.margins
	plotW := size.Width - m.left - m.right
	plotH := size.Height - m.top - m.bottom
	if plotW <= 0 || plotH <= 0 {
		return
	}

	r.objects = r.objects[:1] // keep bg
	graph := p.cv.GraphRect()
	tr := p.cv.Transform()

	r.drawAxes(graph, tr, plotW, plotH)
	for _, it := range p.items {
		if !it.Visible() {
			continue
		}
		r.drawItem(it, tr, plotW, plotH)
	}
	for _, roi := range p.rois {
		r.drawROI(roi, tr, plotW, plotH)
	}
	if p.showLegend {
		r.drawLegend(plotW)
	}
}

// plotPos translates plot-area coordinates to widget coordinates.
func (r *plotRenderer) plotPos(x, y float32) fyne.Position {
	return fyne.NewPos(x+r.plot.margins.left, y+r.plot.margins.top)
}

func (r *plotRenderer) inArea(x, y, plotW, plotH float32) bool {
	return x >= 0 && x <= plotW && y >= 0 && y <= plotH
}

// drawAxes draws the grid, tick marks and density-filtered tick labels for
// both axes, with SI-prefixed label values.
func (r *plotRenderer) drawAxes(graph geom.Rect, tr geom.Transform, plotW, plotH float32) {
	cfg := r.plot.cfg.Axis

	xSets := ticks.Values(graph.X0, graph.X1, plotW)
	ySets := ticks.Values(graph.Y0, graph.Y1, plotH)
	if cfg.MaxTickLevels > 0 {
		if len(xSets) > cfg.MaxTickLevels {
			xSets = xSets[:cfg.MaxTickLevels]
		}
		if len(ySets) > cfg.MaxTickLevels {
			ySets = ySets[:cfg.MaxTickLevels]
		}
	}

	xScale, xPrefix := ticks.SIPrefix(maxAbs(graph.X0, graph.X1))
	yScale, yPrefix := ticks.SIPrefix(maxAbs(graph.Y0, graph.Y1))

	if len(xSets) > 0 {
		spacing := xSets[0].Level.Spacing
		xSets = ticks.FilterByDensity(xSets, plotW, func(v float64) float32 {
			return fyne.MeasureText(ticks.FormatValue(v, spacing, xScale), cfg.LabelSize, fyne.TextStyle{}).Width + 4
		})
	}
	if len(ySets) > 0 {
		// Vertical labels stack by height, not width.
		labelH := fyne.MeasureText("0", cfg.LabelSize, fyne.TextStyle{}).Height + 2
		ySets = ticks.FilterByDensity(ySets, plotH, func(float64) float32 { return labelH })
	}

	// X axis: vertical grid lines, ticks below, labels on the major level.
	for lvl, set := range xSets {
		gridColor := r.grid
		if lvl > 0 {
			gridColor = r.gridMinor
		}
		for _, v := range set.Values {
			x, _ := tr.Apply(v, graph.Y0)
			line := fynecanvas.NewLine(gridColor)
			line.Position1 = r.plotPos(x, 0)
			line.Position2 = r.plotPos(x, plotH)
			line.StrokeWidth = 1
			r.objects = append(r.objects, line)

			tick := fynecanvas.NewLine(r.fg)
			tick.Position1 = r.plotPos(x, plotH)
			tick.Position2 = r.plotPos(x, plotH+tickLen(cfg, lvl))
			tick.StrokeWidth = 1
			r.objects = append(r.objects, tick)

			if lvl == 0 {
				text := fynecanvas.NewText(ticks.FormatValue(v, set.Level.Spacing, xScale), r.fg)
				text.TextSize = cfg.LabelSize
				text.Alignment = fyne.TextAlignCenter
				text.Move(r.plotPos(x-20, plotH+cfg.TickLength+2))
				r.objects = append(r.objects, text)
			}
		}
	}

	// Y axis: horizontal grid lines, labels right-aligned at the left edge.
	for lvl, set := range ySets {
		gridColor := r.grid
		if lvl > 0 {
			gridColor = r.gridMinor
		}
		for _, v := range set.Values {
			_, y := tr.Apply(graph.X0, v)
			line := fynecanvas.NewLine(gridColor)
			line.Position1 = r.plotPos(0, y)
			line.Position2 = r.plotPos(plotW, y)
			line.StrokeWidth = 1
			r.objects = append(r.objects, line)

			tick := fynecanvas.NewLine(r.fg)
			tick.Position1 = r.plotPos(-tickLen(cfg, lvl), y)
			tick.Position2 = r.plotPos(0, y)
			tick.StrokeWidth = 1
			r.objects = append(r.objects, tick)

			if lvl == 0 {
				text := fynecanvas.NewText(ticks.FormatValue(v, set.Level.Spacing, yScale), r.fg)
				text.TextSize = cfg.LabelSize
				text.Alignment = fyne.TextAlignTrailing
				text.Move(r.plotPos(-cfg.TickLength-4, y-6))
				r.objects = append(r.objects, text)
			}
		}
	}

	r.drawCaptions(xPrefix, yPrefix, plotW, plotH)
}

func tickLen(cfg config.AxisConfig, lvl int) float32 {
	if lvl == 0 {
		return cfg.TickLength
	}
	return cfg.TickLength / 2
}

// drawCaptions draws the axis captions with the SI prefix and unit.
func (r *plotRenderer) drawCaptions(xPrefix, yPrefix string, plotW, plotH float32) {
	cfg := r.plot.cfg.Axis
	if r.plot.xLabel != "" {
		text := fynecanvas.NewText(caption(r.plot.xLabel, xPrefix, cfg.LabelUnit), r.fg)
		text.TextSize = cfg.LabelSize + 1
		text.Alignment = fyne.TextAlignCenter
		text.Move(r.plotPos(plotW/2-30, plotH+cfg.TickLength+16))
		r.objects = append(r.objects, text)
	}
	if r.plot.yLabel != "" {
		text := fynecanvas.NewText(caption(r.plot.yLabel, yPrefix, cfg.LabelUnit), r.fg)
		text.TextSize = cfg.LabelSize + 1
		text.Alignment = fyne.TextAlignLeading
		text.Move(r.plotPos(4, -16))
		r.objects = append(r.objects, text)
	}
}

func caption(label, prefix, unit string) string {
	if prefix == "" && unit == "" {
		return label
	}
	return label + " (" + prefix + unit + ")"
}

func maxAbs(a, b float64) float64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

// drawItem dispatches on the concrete item type.
func (r *plotRenderer) drawItem(it Item, tr geom.Transform, plotW, plotH float32) {
	switch v := it.(type) {
	case *items.Curve:
		r.drawPolyline(v.DisplayPoints(), v.Line, tr, plotW, plotH)
	case *items.Scatter:
		r.drawScatter(v, tr, plotW, plotH)
	case *items.Bar:
		r.drawBars(v, tr, plotW, plotH)
	case *items.ErrorBar:
		r.drawErrorBars(v, tr, plotW, plotH)
	case *items.Candlestick:
		r.drawCandles(v, tr, plotW, plotH)
	case *items.Stem:
		r.drawStems(v, tr, plotW, plotH)
	case *items.Annotation:
		r.drawAnnotation(v, tr, plotW, plotH)
	case *items.Image:
		r.drawImage(v, tr)
	}
}

func (r *plotRenderer) drawPolyline(pts []series.XY, style items.LineStyle, tr geom.Transform, plotW, plotH float32) {
	for i := 1; i < len(pts); i++ {
		x0, y0 := tr.Apply(pts[i-1].X, pts[i-1].Y)
		x1, y1 := tr.Apply(pts[i].X, pts[i].Y)
		if !segmentTouches(x0, y0, x1, y1, plotW, plotH) {
			continue
		}
		line := fynecanvas.NewLine(style.Color)
		line.Position1 = r.plotPos(x0, y0)
		line.Position2 = r.plotPos(x1, y1)
		line.StrokeWidth = style.Width
		r.objects = append(r.objects, line)
	}
}

// segmentTouches coarsely rejects segments entirely beyond one edge.
func segmentTouches(x0, y0, x1, y1, plotW, plotH float32) bool {
	if x0 < 0 && x1 < 0 || x0 > plotW && x1 > plotW {
		return false
	}
	if y0 < 0 && y1 < 0 || y0 > plotH && y1 > plotH {
		return false
	}
	return true
}

func (r *plotRenderer) drawScatter(s *items.Scatter, tr geom.Transform, plotW, plotH float32) {
	half := s.Size / 2
	for _, pt := range s.Points() {
		x, y := tr.Apply(pt.X, pt.Y)
		if !r.inArea(x, y, plotW, plotH) {
			continue
		}
		switch s.Shape {
		case items.MarkerSquare:
			rect := fynecanvas.NewRectangle(s.Line.Color)
			rect.Resize(fyne.NewSize(s.Size, s.Size))
			rect.Move(r.plotPos(x-half, y-half))
			r.objects = append(r.objects, rect)
		case items.MarkerCross:
			l1 := fynecanvas.NewLine(s.Line.Color)
			l1.Position1 = r.plotPos(x-half, y-half)
			l1.Position2 = r.plotPos(x+half, y+half)
			l1.StrokeWidth = s.Line.Width
			l2 := fynecanvas.NewLine(s.Line.Color)
			l2.Position1 = r.plotPos(x-half, y+half)
			l2.Position2 = r.plotPos(x+half, y-half)
			l2.StrokeWidth = s.Line.Width
			r.objects = append(r.objects, l1, l2)
		default:
			c := fynecanvas.NewCircle(s.Line.Color)
			c.Resize(fyne.NewSize(s.Size, s.Size))
			c.Move(r.plotPos(x-half, y-half))
			r.objects = append(r.objects, c)
		}
	}
}

func (r *plotRenderer) drawBars(b *items.Bar, tr geom.Transform, plotW, plotH float32) {
	xs, heights := b.Data()
	for i, cx := range xs {
		x0, y0 := tr.Apply(cx-b.Width/2, b.Baseline)
		x1, y1 := tr.Apply(cx+b.Width/2, heights[i])
		if !segmentTouches(x0, y0, x1, y1, plotW, plotH) {
			continue
		}
		if y1 > y0 {
			y0, y1 = y1, y0
		}
		rect := fynecanvas.NewRectangle(b.Fill.Color)
		rect.Resize(fyne.NewSize(x1-x0, y0-y1))
		rect.Move(r.plotPos(x0, y1))
		rect.StrokeColor = b.Line.Color
		rect.StrokeWidth = b.Line.Width
		r.objects = append(r.objects, rect)
	}
}

func (r *plotRenderer) drawErrorBars(e *items.ErrorBar, tr geom.Transform, plotW, plotH float32) {
	xs, ys, low, high := e.Data()
	for i, x := range xs {
		cx, top := tr.Apply(x, ys[i]+high[i])
		_, bot := tr.Apply(x, ys[i]-low[i])
		if !segmentTouches(cx, top, cx, bot, plotW, plotH) {
			continue
		}
		whisker := fynecanvas.NewLine(e.Line.Color)
		whisker.Position1 = r.plotPos(cx, top)
		whisker.Position2 = r.plotPos(cx, bot)
		whisker.StrokeWidth = e.Line.Width
		r.objects = append(r.objects, whisker)

		for _, y := range [...]float32{top, bot} {
			cap := fynecanvas.NewLine(e.Line.Color)
			cap.Position1 = r.plotPos(cx-e.CapWidth/2, y)
			cap.Position2 = r.plotPos(cx+e.CapWidth/2, y)
			cap.StrokeWidth = e.Line.Width
			r.objects = append(r.objects, cap)
		}

		_, cy := tr.Apply(x, ys[i])
		dot := fynecanvas.NewCircle(e.Line.Color)
		dot.Resize(fyne.NewSize(4, 4))
		dot.Move(r.plotPos(cx-2, cy-2))
		r.objects = append(r.objects, dot)
	}
}

func (r *plotRenderer) drawCandles(c *items.Candlestick, tr geom.Transform, plotW, plotH float32) {
	ts, open, high, low, closeV := c.Data()
	for i, t := range ts {
		cx, hiY := tr.Apply(t, high[i])
		_, loY := tr.Apply(t, low[i])
		if !segmentTouches(cx, hiY, cx, loY, plotW, plotH) {
			continue
		}
		wick := fynecanvas.NewLine(c.Wick.Color)
		wick.Position1 = r.plotPos(cx, hiY)
		wick.Position2 = r.plotPos(cx, loY)
		wick.StrokeWidth = c.Wick.Width
		r.objects = append(r.objects, wick)

		x0, oY := tr.Apply(t-c.Width/2, open[i])
		x1, clY := tr.Apply(t+c.Width/2, closeV[i])
		fill := c.Rising
		if closeV[i] < open[i] {
			fill = c.Falling
		}
		top, bot := oY, clY
		if bot < top {
			top, bot = bot, top
		}
		if bot-top < 1 {
			bot = top + 1 // doji candles stay visible
		}
		body := fynecanvas.NewRectangle(fill.Color)
		body.Resize(fyne.NewSize(x1-x0, bot-top))
		body.Move(r.plotPos(x0, top))
		r.objects = append(r.objects, body)
	}
}

func (r *plotRenderer) drawStems(s *items.Stem, tr geom.Transform, plotW, plotH float32) {
	for _, pt := range s.Points() {
		x, y := tr.Apply(pt.X, pt.Y)
		_, baseY := tr.Apply(pt.X, s.Baseline)
		if !segmentTouches(x, y, x, baseY, plotW, plotH) {
			continue
		}
		line := fynecanvas.NewLine(s.Line.Color)
		line.Position1 = r.plotPos(x, baseY)
		line.Position2 = r.plotPos(x, y)
		line.StrokeWidth = s.Line.Width
		r.objects = append(r.objects, line)

		if s.MarkerSize > 0 {
			tip := fynecanvas.NewCircle(s.Line.Color)
			tip.Resize(fyne.NewSize(s.MarkerSize, s.MarkerSize))
			tip.Move(r.plotPos(x-s.MarkerSize/2, y-s.MarkerSize/2))
			r.objects = append(r.objects, tip)
		}
	}
}

func (r *plotRenderer) drawAnnotation(a *items.Annotation, tr geom.Transform, plotW, plotH float32) {
	ax, ay := a.Pos()
	x, y := tr.Apply(ax, ay)
	if !r.inArea(x, y, plotW, plotH) {
		return
	}
	text := fynecanvas.NewText(a.Text, a.Color)
	text.TextSize = a.TextSize
	switch a.Anchor {
	case items.AnchorTopRight:
		text.Alignment = fyne.TextAlignTrailing
		text.Move(r.plotPos(x, y-a.TextSize-2))
	case items.AnchorBottomLeft:
		text.Move(r.plotPos(x, y+2))
	case items.AnchorBottomRight:
		text.Alignment = fyne.TextAlignTrailing
		text.Move(r.plotPos(x, y+2))
	case items.AnchorCenter:
		text.Alignment = fyne.TextAlignCenter
		text.Move(r.plotPos(x, y-a.TextSize/2))
	default: // AnchorTopLeft
		text.Move(r.plotPos(x, y-a.TextSize-2))
	}
	r.objects = append(r.objects, text)
}

func (r *plotRenderer) drawImage(im *items.Image, tr geom.Transform) {
	src := im.Rendered()
	if src == nil {
		return
	}
	rect := im.Bounds()
	x0, y1 := tr.Apply(rect.X0, rect.Y0)
	x1, y0 := tr.Apply(rect.X1, rect.Y1)
	img := fynecanvas.NewImageFromImage(src)
	img.FillMode = fynecanvas.ImageFillStretch
	img.ScaleMode = fynecanvas.ImageScalePixels
	img.Move(r.plotPos(x0, y0))
	img.Resize(fyne.NewSize(x1-x0, y1-y0))
	r.objects = append(r.objects, img)
}

func (r *plotRenderer) drawROI(roi *ROI, tr geom.Transform, plotW, plotH float32) {
	col := mustColor(r.plot.cfg.ROI.Color)
	rect := roi.Rect()
	x0, y1 := tr.Apply(rect.X0, rect.Y0)
	x1, y0 := tr.Apply(rect.X1, rect.Y1)

	outline := fynecanvas.NewRectangle(color.NRGBA{})
	outline.StrokeColor = col
	outline.StrokeWidth = 1.5
	outline.Move(r.plotPos(x0, y0))
	outline.Resize(fyne.NewSize(x1-x0, y1-y0))
	r.objects = append(r.objects, outline)

	h := roi.handleSize()
	for _, c := range [...][2]float32{{x0, y0}, {x0, y1}, {x1, y0}, {x1, y1}} {
		handle := fynecanvas.NewRectangle(col)
		handle.Resize(fyne.NewSize(h, h))
		handle.Move(r.plotPos(c[0]-h/2, c[1]-h/2))
		r.objects = append(r.objects, handle)
	}
}

// drawLegend draws a swatch and name for every named visible item in the
// top-right corner of the plot area.
func (r *plotRenderer) drawLegend(plotW float32) {
	cfg := r.plot.cfg.Legend
	y := float32(8)
	for _, it := range r.plot.items {
		if !it.Visible() || it.Name() == "" {
			continue
		}
		swatch := fynecanvas.NewLine(legendColor(it))
		swatch.Position1 = r.plotPos(plotW-90, y+cfg.TextSize/2)
		swatch.Position2 = r.plotPos(plotW-74, y+cfg.TextSize/2)
		swatch.StrokeWidth = 3
		r.objects = append(r.objects, swatch)

		text := fynecanvas.NewText(it.Name(), r.fg)
		text.TextSize = cfg.TextSize
		text.Move(r.plotPos(plotW-70, y))
		r.objects = append(r.objects, text)

		y += cfg.TextSize + 6
	}
}

func legendColor(it Item) color.NRGBA {
	switch v := it.(type) {
	case *items.Curve:
		return v.Line.Color
	case *items.Scatter:
		return v.Line.Color
	case *items.Bar:
		return v.Fill.Color
	case *items.ErrorBar:
		return v.Line.Color
	case *items.Candlestick:
		return v.Rising.Color
	case *items.Stem:
		return v.Line.Color
	default:
		return color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	}
}

// Objects returns all canvas objects for rendering.
func (r *plotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up resources.
func (r *plotRenderer) Destroy() {
	r.plot.mu.Lock()
	r.plot.cv.Close()
	r.plot.mu.Unlock()
}
