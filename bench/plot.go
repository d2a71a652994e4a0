package bench

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// PlotTimes renders add and lookup wall times as two side-by-side line
// panels, one series per kind in _kinds_, and writes the pair to _path_ as
// a PNG. _titleSuffix_ is appended to both panel titles; the zoomed charts
// pass a suffix together with a kinds slice that drops the linear baseline.
func PlotTimes(results []Result, kinds []string, titleSuffix, path string) error {
	addPanel := newTrialPlot("Add Time"+titleSuffix, "Time (s)")
	if err := addSeries(addPanel, results, kinds, func(result Result) float64 {
		return result.AddTime.Seconds()
	}); err != nil {
		return err
	}
	lookupPanel := newTrialPlot("Lookup Time"+titleSuffix, "Time (s)")
	if err := addSeries(lookupPanel, results, kinds, func(result Result) float64 {
		return result.LookupTime.Seconds()
	}); err != nil {
		return err
	}
	return writePanels(addPanel, lookupPanel, path)
}

// PlotComparisons renders the average comparisons charged per add and per
// lookup, the counts that expose each strategy's growth with corpus size.
func PlotComparisons(results []Result, kinds []string, titleSuffix, path string) error {
	addPanel := newTrialPlot("Add Comparisons"+titleSuffix, "Average Comparisons per Operation")
	if err := addSeries(addPanel, results, kinds, func(result Result) float64 {
		return average(result.AddComparisons, result.NumLogins)
	}); err != nil {
		return err
	}
	lookupPanel := newTrialPlot("Lookup Comparisons"+titleSuffix, "Average Comparisons per Operation")
	if err := addSeries(lookupPanel, results, kinds, func(result Result) float64 {
		return average(result.LookupComparisons, result.NumLookups)
	}); err != nil {
		return err
	}
	return writePanels(addPanel, lookupPanel, path)
}

func newTrialPlot(title, yLabel string) *plot.Plot {
	trialPlot := plot.New()
	trialPlot.Title.Text = title
	trialPlot.X.Label.Text = "Number of logins"
	trialPlot.Y.Label.Text = yLabel
	trialPlot.Add(plotter.NewGrid())
	return trialPlot
}

func addSeries(trialPlot *plot.Plot, results []Result, kinds []string, value func(Result) float64) error {
	args := make([]interface{}, 0, 2*len(kinds))
	for _, kind := range kinds {
		series := lineSeries(results, kind, value)
		if len(series) == 0 {
			continue
		}
		args = append(args, kind, series)
	}
	if err := plotutil.AddLinePoints(trialPlot, args...); err != nil {
		return fmt.Errorf("bench: plotting series: %w", err)
	}
	return nil
}

func lineSeries(results []Result, kind string, value func(Result) float64) plotter.XYs {
	var series plotter.XYs
	for _, result := range results {
		if result.Algorithm != kind {
			continue
		}
		series = append(series, plotter.XY{X: float64(result.NumLogins), Y: value(result)})
	}
	return series
}

func writePanels(left, right *plot.Plot, path string) error {
	img := vgimg.New(12*vg.Inch, 5*vg.Inch)
	canvas := draw.New(img)
	tiles := draw.Tiles{
		Rows: 1,
		Cols: 2,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}
	panels := [][]*plot.Plot{{left, right}}
	canvases := plot.Align(panels, tiles, canvas)
	left.Draw(canvases[0][0])
	right.Draw(canvases[0][1])

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("bench: creating chart file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: img}
	if _, err := png.WriteTo(file); err != nil {
		file.Close()
		return fmt.Errorf("bench: writing chart: %w", err)
	}
	return file.Close()
}
