// Package export renders a snapshot of plot items to a static image file
// (PNG, SVG, PDF by extension) using gonum/plot. It covers the data item
// types with gonum equivalents: curves, scatter points, bars and error
// bars; other item types are skipped.
package export

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/itohio/goplot/pkg/canvas"
	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/items"
)

// Options controls the exported figure.
type Options struct {
	Title          string
	XLabel, YLabel string
	// Width and Height of the figure; zero values default to 8x6 inches.
	Width, Height vg.Length
	// Range fixes the axis ranges; nil lets gonum auto-scale.
	Range *geom.Rect
}

// Save writes the items to filename. The format follows the file
// extension. Invisible items are skipped; an item type without a gonum
// equivalent is skipped silently.
func Save(filename string, opt Options, plotItems ...canvas.Item) error {
	p := plot.New()
	p.Title.Text = opt.Title
	p.X.Label.Text = opt.XLabel
	p.Y.Label.Text = opt.YLabel

	if opt.Range != nil {
		if opt.Range.IsEmpty() {
			return fmt.Errorf("export: degenerate range %+v", *opt.Range)
		}
		p.X.Min, p.X.Max = opt.Range.X0, opt.Range.X1
		p.Y.Min, p.Y.Max = opt.Range.Y0, opt.Range.Y1
	}

	for _, it := range plotItems {
		if !it.Visible() {
			continue
		}
		if err := add(p, it); err != nil {
			return err
		}
	}

	w, h := opt.Width, opt.Height
	if w == 0 {
		w = 8 * vg.Inch
	}
	if h == 0 {
		h = 6 * vg.Inch
	}
	if err := p.Save(w, h, filename); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}

func add(p *plot.Plot, it canvas.Item) error {
	switch v := it.(type) {
	case *items.Curve:
		line, err := plotter.NewLine(curveXYs(v))
		if err != nil {
			return fmt.Errorf("export: curve %s: %w", v.Name(), err)
		}
		line.Color = v.Line.Color
		line.Width = vg.Length(v.Line.Width)
		p.Add(line)
		p.Legend.Add(v.Name(), line)
	case *items.Scatter:
		sc, err := plotter.NewScatter(scatterXYs(v))
		if err != nil {
			return fmt.Errorf("export: scatter %s: %w", v.Name(), err)
		}
		sc.Color = v.Line.Color
		p.Add(sc)
		p.Legend.Add(v.Name(), sc)
	case *items.Bar:
		polys, err := barPolygons(v)
		if err != nil {
			return fmt.Errorf("export: bar %s: %w", v.Name(), err)
		}
		for _, poly := range polys {
			p.Add(poly)
		}
	case *items.ErrorBar:
		data := errData(v)
		bars, err := plotter.NewYErrorBars(data)
		if err != nil {
			return fmt.Errorf("export: errorbar %s: %w", v.Name(), err)
		}
		bars.Color = v.Line.Color
		p.Add(bars)
		sc, err := plotter.NewScatter(data.XYs)
		if err != nil {
			return fmt.Errorf("export: errorbar %s: %w", v.Name(), err)
		}
		sc.Color = v.Line.Color
		p.Add(sc)
		p.Legend.Add(v.Name(), sc)
	}
	return nil
}

func curveXYs(c *items.Curve) plotter.XYs {
	pts := c.DisplayPoints()
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

func scatterXYs(s *items.Scatter) plotter.XYs {
	pts := s.Points()
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt.X, pt.Y
	}
	return xys
}

func barPolygons(b *items.Bar) ([]*plotter.Polygon, error) {
	xs, heights := b.Data()
	half := b.Width / 2
	polys := make([]*plotter.Polygon, 0, len(xs))
	for i, x := range xs {
		poly, err := plotter.NewPolygon(plotter.XYs{
			{X: x - half, Y: b.Baseline},
			{X: x - half, Y: heights[i]},
			{X: x + half, Y: heights[i]},
			{X: x + half, Y: b.Baseline},
		})
		if err != nil {
			return nil, err
		}
		poly.Color = b.Fill.Color
		poly.LineStyle.Color = b.Line.Color
		polys = append(polys, poly)
	}
	return polys, nil
}

// yErrData adapts an ErrorBar item to gonum's XYer + YErrorer contract.
type yErrData struct {
	plotter.XYs
	low, high []float64
}

func errData(e *items.ErrorBar) yErrData {
	xs, ys, low, high := e.Data()
	xys := make(plotter.XYs, len(xs))
	for i := range xs {
		xys[i].X, xys[i].Y = xs[i], ys[i]
	}
	return yErrData{XYs: xys, low: low, high: high}
}

// YError implements plotter.YErrorer.
func (d yErrData) YError(i int) (float64, float64) {
	return d.low[i], d.high[i]
}
