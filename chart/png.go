package chart

import (
	"fmt"
	"path/filepath"

	"github.com/weiihann/threadplot/dataset"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

const (
	pngWidth  = 6.4 * vg.Inch
	pngHeight = 4.8 * vg.Inch
	barWidth  = 40
)

// Render draws the first record of data as a bar chart and saves it as
// a PNG named after ratios inside dir, replacing any existing file. It
// returns the path written.
func Render(ratios Ratios, data dataset.Dataset, dir string) (string, error) {
	values, err := Bars(data)
	if err != nil {
		return "", err
	}

	p, err := newBarPlot(ratios, values)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, ratios.FileName(PNGExt))
	if err := p.Save(pngWidth, pngHeight, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}

	return path, nil
}

// newBarPlot lays out the baseline and the remaining bars as two bar
// charts sharing one nominal axis, so each can carry its own color.
func newBarPlot(ratios Ratios, values dataset.Record) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = ratios.Title()
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel

	baseline, err := plotter.NewBarChart(plotter.Values(values[:1]), vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("create baseline bar: %w", err)
	}
	baseline.LineStyle.Width = vg.Length(0)
	baseline.Color = highlightColor

	rest, err := plotter.NewBarChart(plotter.Values(values[1:]), vg.Points(barWidth))
	if err != nil {
		return nil, fmt.Errorf("create bar chart: %w", err)
	}
	rest.LineStyle.Width = vg.Length(0)
	rest.Color = barColor
	rest.XMin = 1

	p.Add(baseline, rest)
	p.NominalX(Categories[:]...)

	return p, nil
}
