// Package main provides the CLI entry point for threadplot, which charts
// benchmark execution time against thread count.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/weiihann/threadplot/chart"
	"github.com/weiihann/threadplot/dataset"
	"github.com/weiihann/threadplot/report"
)

// ErrArgCount is returned when fewer than three ratio labels are given.
var ErrArgCount = errors.New("expected insert, remove and contains ratios")

func main() {
	level := new(slog.LevelVar)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	root := newRootCmd(logger, level)
	if err := root.Execute(); err != nil {
		logger.Error("threadplot failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger, level *slog.LevelVar) *cobra.Command {
	var (
		html    bool
		summary bool
		asJSON  bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "threadplot <insertRatio> <removeRatio> <containsRatio>",
		Short: "Chart benchmark execution time per thread count",
		Long: `Threadplot reads whitespace-separated execution times from stdin,
one line per run, and draws the first line as a bar chart over 1, 2, 4,
8, 16 and 32 threads. The chart is saved to the current directory as
<insertRatio>_<removeRatio>_<containsRatio>.png.

Ratio labels are taken verbatim, including ones starting with "-".`,
		// Ratio labels such as "-10" must not be read as shorthand flags,
		// so flags are split out of the arguments by hand.
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, raw []string) error {
			args, flagArgs := splitArgs(cmd.Flags(), raw)
			if err := cmd.Flags().Parse(flagArgs); err != nil {
				return err
			}

			if help, _ := cmd.Flags().GetBool("help"); help {
				return cmd.Help()
			}

			if err := ratioArgs(cmd, args); err != nil {
				return err
			}

			if verbose {
				level.Set(slog.LevelDebug)
			}

			return runPlot(cmd.Context(), logger, runConfig{
				ratios: chart.Ratios{
					Insert:   args[0],
					Remove:   args[1],
					Contains: args[2],
				},
				dir:     ".",
				html:    html,
				summary: summary,
				asJSON:  asJSON,
				in:      cmd.InOrStdin(),
				out:     cmd.OutOrStdout(),
			})
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&html, "html", false,
		"Also write an interactive HTML chart")
	flags.BoolVar(&summary, "summary", false,
		"Print a speedup table for the charted run")
	flags.BoolVar(&asJSON, "json", false,
		"Print the speedup table as JSON instead of markdown")
	flags.BoolVar(&verbose, "verbose", false,
		"Enable debug logging")

	return cmd
}

// splitArgs separates the flags registered on flags from positional
// arguments. Only "--name", "--name=value" and registered single-letter
// shorthands count as flags; everything after "--" is positional.
func splitArgs(flags *pflag.FlagSet, raw []string) (args, flagArgs []string) {
	for i, a := range raw {
		switch {
		case a == "--":
			return append(args, raw[i+1:]...), flagArgs

		case strings.HasPrefix(a, "--"):
			name, _, _ := strings.Cut(a[2:], "=")
			if flags.Lookup(name) != nil {
				flagArgs = append(flagArgs, a)

				continue
			}

		case len(a) == 2 && a[0] == '-':
			if flags.ShorthandLookup(a[1:]) != nil {
				flagArgs = append(flagArgs, a)

				continue
			}
		}

		args = append(args, a)
	}

	return args, flagArgs
}

// ratioArgs accepts three or more positional arguments. Anything after
// the third is ignored.
func ratioArgs(_ *cobra.Command, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("%w, got %d argument(s)", ErrArgCount, len(args))
	}

	return nil
}

type runConfig struct {
	ratios  chart.Ratios
	dir     string
	html    bool
	summary bool
	asJSON  bool
	in      io.Reader
	out     io.Writer
}

func runPlot(ctx context.Context, logger *slog.Logger, cfg runConfig) error {
	data, err := dataset.Parse(cfg.in)
	if err != nil {
		return fmt.Errorf("parse input: %w", err)
	}

	logger.DebugContext(ctx, "input parsed",
		slog.Int("records", len(data)),
	)

	path, err := chart.Render(cfg.ratios, data, cfg.dir)
	if err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	logger.InfoContext(ctx, "chart written",
		slog.String("title", cfg.ratios.Title()),
		slog.String("path", path),
	)

	if cfg.html {
		htmlPath, err := chart.RenderHTML(cfg.ratios, data, cfg.dir)
		if err != nil {
			return fmt.Errorf("render html chart: %w", err)
		}

		logger.InfoContext(ctx, "html chart written",
			slog.String("path", htmlPath),
		)
	}

	if !cfg.summary && !cfg.asJSON {
		return nil
	}

	first, err := chart.Bars(data)
	if err != nil {
		return err
	}

	if cfg.asJSON {
		if err := report.GenerateJSON(cfg.out, cfg.ratios, first); err != nil {
			return fmt.Errorf("generate JSON report: %w", err)
		}

		return nil
	}

	if err := report.Generate(cfg.out, cfg.ratios, first); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}

	return nil
}
