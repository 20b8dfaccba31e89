// Package main provides the CLI entry point for scribebench, which charts
// the gas usage of the Scribe oracle contracts.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chronicleprotocol/scribebench/bench"
	"github.com/chronicleprotocol/scribebench/render"
	"github.com/chronicleprotocol/scribebench/report"
)

// outputPath is where the chart is written, relative to the working
// directory. Existing files are overwritten.
const outputPath = "benchmarks.png"

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	root := newRootCmd(logger)
	if err := root.Execute(); err != nil {
		logger.Error("scribebench failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func newRootCmd(logger *slog.Logger) *cobra.Command {
	var renderer string

	root := &cobra.Command{
		Use:   "scribebench",
		Short: "Chart Scribe gas benchmark results",
		Long: `Scribebench renders the gas usage of Scribe's poke() and
ScribeOptimistic's opPoke() for a growing number of bar as a line chart
and saves it to ` + outputPath + ` in the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return renderChart(cmd.Context(), logger, renderer, bench.Poke())
		},
	}

	root.Flags().StringVar(&renderer, "renderer", render.NameGonum,
		"Chart renderer: "+strings.Join(render.Names(), ", "))

	root.AddCommand(newReportCmd(logger))

	return root
}

func newReportCmd(logger *slog.Logger) *cobra.Command {
	var outputJSON bool

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print the benchmark results as a table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c := bench.Poke()
			w := cmd.OutOrStdout()

			logger.InfoContext(cmd.Context(), "generating report",
				slog.String("title", c.Title),
				slog.Bool("json", outputJSON),
			)

			if outputJSON {
				if err := report.GenerateJSON(w, c); err != nil {
					return fmt.Errorf("generate JSON report: %w", err)
				}

				return nil
			}

			if err := report.Generate(w, c); err != nil {
				return fmt.Errorf("generate report: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&outputJSON, "json", false,
		"Output results as JSON instead of table")

	return cmd
}

func renderChart(
	ctx context.Context,
	logger *slog.Logger,
	rendererName string,
	c bench.Chart,
) error {
	r, err := render.New(rendererName)
	if err != nil {
		return err
	}

	if err := render.WriteFile(ctx, logger, r, c, outputPath); err != nil {
		return fmt.Errorf("write chart: %w", err)
	}

	return nil
}
