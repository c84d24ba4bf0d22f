package main

import (
	"flag"
	"sync/atomic"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	log "github.com/sirupsen/logrus"

	"github.com/itohio/goplot/pkg/config"
	"github.com/itohio/goplot/pkg/export"
	"github.com/itohio/goplot/pkg/geom"
	"github.com/itohio/goplot/pkg/items"
	"github.com/itohio/goplot/pkg/plotwidget"
	"github.com/itohio/goplot/pkg/stream"
)

func main() {
	var (
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		windowFlag = flag.Duration("window", 20*time.Second, "Live data window duration")
		rateFlag   = flag.Duration("rate", 20*time.Millisecond, "Sample period of the demo feed")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.WithError(err).Fatal("failed to load configuration")
	}

	application := app.NewWithID("com.itohio.goplot.demo")

	window := application.NewWindow("goplot demo")
	window.Resize(fyne.NewSize(1200, 800))
	window.CenterOnScreen()

	// Two live plots stacked vertically, sharing the X axis.
	signalPlot := plotwidget.New(cfg)
	signalPlot.SetLabels("time", "signal")
	noisePlot := plotwidget.New(cfg)
	noisePlot.SetLabels("time", "noise")
	signalPlot.Canvas().LinkXTo(noisePlot.Canvas())
	noisePlot.Canvas().LinkXTo(signalPlot.Canvas())

	signalCurve := items.NewCurve("sine")
	signalCurve.Line.Color = cfg.PaletteColor(0)
	signalPlot.AddItem(signalCurve)

	noiseCurve := items.NewCurve("noise")
	noiseCurve.Line.Color = cfg.PaletteColor(1)
	noisePlot.AddItem(noiseCurve)

	roi := plotwidget.NewROI(geom.NewRect(0, -0.5, 5, 0.5))
	roi.OnChanged(func(r geom.Rect) {
		log.WithField("rect", r).Debug("roi changed")
	})
	signalPlot.AddROI(roi)

	state := &appState{
		cfg:         cfg,
		window:      window,
		signalPlot:  signalPlot,
		signalCurve: signalCurve,
		noisePlot:   noisePlot,
		noiseCurve:  noiseCurve,
	}

	state.startFeed(*windowFlag, *rateFlag)

	toolbar := createToolbar(state)
	content := container.NewBorder(
		toolbar,
		nil,
		nil,
		nil,
		container.NewGridWithRows(2, signalPlot, noisePlot),
	)

	window.SetContent(content)
	window.SetOnClosed(state.feed.stop)
	window.ShowAndRun()
}

// appState holds the application state shared between toolbar handlers
// and the feed.
type appState struct {
	cfg    *config.Config
	window fyne.Window

	signalPlot  *plotwidget.PlotWidget
	signalCurve *items.Curve
	noisePlot   *plotwidget.PlotWidget
	noiseCurve  *items.Curve

	feed *feed
	// paused is toggled on the UI goroutine and read from the window
	// update callbacks.
	paused atomic.Bool
}

// startFeed wires the demo generator through rolling windows into the
// curves. Widget updates hop to the UI thread with fyne.Do.
func (s *appState) startFeed(window, rate time.Duration) {
	signalWin := stream.NewWindow(window)
	noiseWin := stream.NewWindow(window)

	signalWin.OnUpdate(func(pts []stream.Point) {
		if s.paused.Load() {
			return
		}
		xs, ys := toSeries(pts)
		fyne.Do(func() {
			if err := s.signalCurve.SetData(xs, ys); err != nil {
				log.WithError(err).Warn("signal update rejected")
			}
		})
	})
	noiseWin.OnUpdate(func(pts []stream.Point) {
		if s.paused.Load() {
			return
		}
		xs, ys := toSeries(pts)
		fyne.Do(func() {
			if err := s.noiseCurve.SetData(xs, ys); err != nil {
				log.WithError(err).Warn("noise update rejected")
			}
		})
	})

	s.feed = newFeed(rate)
	go signalWin.Run(s.feed.signal)
	go noiseWin.Run(s.feed.noise)
	s.feed.start()
	log.WithField("rate", rate).Info("demo feed started")
}

// toSeries converts window points to curve data, with X as seconds since
// the first point.
func toSeries(pts []stream.Point) (xs, ys []float64) {
	if len(pts) == 0 {
		return nil, nil
	}
	t0 := pts[0].Timestamp
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, p := range pts {
		xs[i] = p.Timestamp.Sub(t0).Seconds()
		ys[i] = p.Value
	}
	return xs, ys
}

// createToolbar creates the application toolbar with pause, auto-range
// and export buttons.
func createToolbar(state *appState) fyne.CanvasObject {
	pauseBtn := widget.NewButtonWithIcon("", theme.MediaPauseIcon(), nil)
	pauseBtn.OnTapped = func() {
		paused := !state.paused.Load()
		state.paused.Store(paused)
		if paused {
			pauseBtn.SetIcon(theme.MediaPlayIcon())
		} else {
			pauseBtn.SetIcon(theme.MediaPauseIcon())
		}
	}

	autoBtn := widget.NewButtonWithIcon("", theme.ViewFullScreenIcon(), func() {
		state.signalPlot.Canvas().EnableAutoRange(true, true)
		state.noisePlot.Canvas().EnableAutoRange(true, true)
		state.signalPlot.Refresh()
		state.noisePlot.Refresh()
	})

	exportBtn := widget.NewButtonWithIcon("", theme.DocumentSaveIcon(), func() {
		handleExport(state)
	})

	return container.NewBorder(
		nil,
		nil,
		container.NewHBox(pauseBtn, autoBtn, exportBtn),
		nil,
		nil,
	)
}

// handleExport snapshots the signal plot to a PNG next to the config.
func handleExport(state *appState) {
	rect := state.signalPlot.Canvas().GraphRect()
	err := export.Save("snapshot.png", export.Options{
		Title:  "goplot demo",
		XLabel: "time (s)",
		YLabel: "signal",
		Range:  &rect,
	}, state.signalCurve)
	if err != nil {
		log.WithError(err).Error("export failed")
		dialog.ShowError(err, state.window)
		return
	}
	log.Info("exported snapshot.png")
}
