// Package report formats the charted timings into summary tables.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/weiihann/threadplot/chart"
	"github.com/weiihann/threadplot/dataset"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var errNoTimings = errors.New("no timings to report")

// Row is one thread count in the summary.
type Row struct {
	Threads string  `json:"threads"`
	TimeMs  float64 `json:"time_ms"`
	Speedup float64 `json:"speedup"`
}

// Summary is the JSON form of a report.
type Summary struct {
	Title string `json:"title"`
	File  string `json:"file"`
	Rows  []Row  `json:"rows"`
}

// Rows pairs each category with its timing and the speedup relative to
// the single-threaded baseline. Values past the last category are
// ignored.
func Rows(first dataset.Record) []Row {
	n := min(len(first), chart.MinValues)
	rows := make([]Row, 0, n)

	for i := 0; i < n; i++ {
		speedup := 0.0
		if first[0] > 0 && first[i] > 0 {
			speedup = first[0] / first[i]
		}

		rows = append(rows, Row{
			Threads: chart.Categories[i],
			TimeMs:  first[i],
			Speedup: speedup,
		})
	}

	return rows
}

// Generate writes a markdown table for the first record.
func Generate(w io.Writer, ratios chart.Ratios, first dataset.Record) error {
	if len(first) == 0 {
		return errNoTimings
	}

	fmt.Fprintf(w, "## %s\n", ratios.Title())
	fmt.Fprintln(w)

	fmt.Fprintln(w, "| Threads | Time | Speedup |")
	fmt.Fprintln(w, "|---------|------|---------|")

	for _, r := range Rows(first) {
		fmt.Fprintf(w, "| %s | %s | %s |\n",
			r.Threads,
			formatMs(r.TimeMs),
			formatSpeedup(r.Speedup),
		)
	}

	return nil
}

// GenerateJSON writes the report as JSON to w.
func GenerateJSON(w io.Writer, ratios chart.Ratios, first dataset.Record) error {
	if len(first) == 0 {
		return errNoTimings
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(Summary{
		Title: ratios.Title(),
		File:  ratios.FileName(chart.PNGExt),
		Rows:  Rows(first),
	})
}

var printer = message.NewPrinter(language.English)

func formatMs(ms float64) string {
	return printer.Sprintf("%.2fms", ms)
}

func formatSpeedup(s float64) string {
	if s == 0 {
		return "-"
	}

	return fmt.Sprintf("%.2fx", s)
}
