package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/weiihann/threadplot/dataset"
)

// RenderHTML writes the same chart as Render as an interactive HTML
// page next to it. It returns the path written.
func RenderHTML(ratios Ratios, data dataset.Dataset, dir string) (string, error) {
	values, err := Bars(data)
	if err != nil {
		return "", err
	}

	bar := newBarPage(ratios, values)

	path := filepath.Join(dir, ratios.FileName(HTMLExt))

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}

	if err := bar.Render(f); err != nil {
		f.Close()

		return "", fmt.Errorf("render %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}

	return path, nil
}

func newBarPage(ratios Ratios, values dataset.Record) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: ratios.Title(),
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: XLabel,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: YLabel,
		}),
	)

	items := make([]opts.BarData, len(values))
	for i, v := range values {
		c := barColor
		if i == 0 {
			c = highlightColor
		}

		items[i] = opts.BarData{
			Name:      Categories[i],
			Value:     v,
			ItemStyle: &opts.ItemStyle{Color: cssColor(c)},
		}
	}

	bar.SetXAxis(Categories[:]).AddSeries(YLabel, items)

	return bar
}
