// Package chart renders execution time per thread count as a bar chart.
package chart

import (
	"fmt"
	"image/color"

	"github.com/weiihann/threadplot/dataset"
)

// Categories are the thread counts plotted along the x-axis, in the
// order their timings appear in a record.
var Categories = [...]string{"1", "2", "4", "8", "16", "32"}

// MinValues is the number of values the first record must hold.
const MinValues = len(Categories)

const (
	XLabel = "Threads"
	YLabel = "Execution Time (ms)"

	PNGExt  = ".png"
	HTMLExt = ".html"
)

var (
	// highlightColor marks the single-threaded baseline bar.
	highlightColor = color.NRGBA{R: 255, A: 255}

	// barColor is used for every other bar, at half opacity.
	barColor = color.NRGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0x80}
)

// Ratios holds the operation mix labels of a benchmark run. They are
// only ever displayed, never parsed.
type Ratios struct {
	Insert   string
	Remove   string
	Contains string
}

// Title returns the chart title for the mix.
func (r Ratios) Title() string {
	return fmt.Sprintf("%s%% insert, %s%% remove, %s%% contains",
		r.Insert, r.Remove, r.Contains)
}

// FileName returns the output file name for the mix with the given
// extension.
func (r Ratios) FileName(ext string) string {
	return r.Insert + "_" + r.Remove + "_" + r.Contains + ext
}

// Bars returns the values plotted for data, one per category.
func Bars(data dataset.Dataset) (dataset.Record, error) {
	first, err := data.First(MinValues)
	if err != nil {
		return nil, err
	}

	return first[:MinValues], nil
}

func cssColor(c color.NRGBA) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%.2f)", c.R, c.G, c.B, float64(c.A)/255)
}
