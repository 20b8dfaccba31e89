// Package report formats benchmark charts into comparison tables.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/dsnet/golib/unitconv"

	"github.com/chronicleprotocol/scribebench/bench"
)

// Generate writes a markdown comparison table for the given chart.
func Generate(w io.Writer, c bench.Chart) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid chart: %w", err)
	}

	// Header.
	fmt.Fprintf(w, "## %s\n", c.Title)
	fmt.Fprintln(w)
	fmt.Fprintf(w, "%s by %s.\n", c.YLabel, c.XLabel)
	fmt.Fprintln(w)

	// Table header.
	cols := make([]string, 0, len(c.Series)+3)
	cols = append(cols, c.XLabel)
	for _, s := range c.Series {
		cols = append(cols, s.Name)
	}
	cols = append(cols, "Cheapest", "Spread")

	writeRow(w, cols)

	sep := make([]string, len(cols))
	for i, col := range cols {
		sep[i] = strings.Repeat("-", max(len(col), 3))
	}
	writeRow(w, sep)

	for i, x := range c.X {
		row := make([]string, 0, len(cols))
		row = append(row, fmt.Sprintf("%d", x))

		for _, s := range c.Series {
			row = append(row, formatGas(s.Values[i]))
		}

		lo, hi := findCheapest(c.Series, i), findPriciest(c.Series, i)

		spread := 1.0
		if low := c.Series[lo].Values[i]; low > 0 {
			spread = float64(c.Series[hi].Values[i]) / float64(low)
		}

		row = append(row, c.Series[lo].Name, fmt.Sprintf("%.2fx", spread))
		writeRow(w, row)
	}

	fmt.Fprintln(w)

	// Growth from the smallest to the largest x.
	last := len(c.X) - 1
	for _, s := range c.Series {
		growth := 1.0
		if s.Values[0] > 0 {
			growth = float64(s.Values[last]) / float64(s.Values[0])
		}

		fmt.Fprintf(w, "- %s: %s at %d, %s at %d (%.2fx)\n",
			s.Name,
			formatGas(s.Values[0]), c.X[0],
			formatGas(s.Values[last]), c.X[last],
			growth,
		)
	}

	return nil
}

// GenerateJSON writes the chart as JSON to w.
func GenerateJSON(w io.Writer, c bench.Chart) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid chart: %w", err)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(c)
}

func writeRow(w io.Writer, cells []string) {
	fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
}

// findCheapest returns the index of the series with the lowest value at
// position i. Ties go to the earlier series.
func findCheapest(series []bench.Series, i int) int {
	best := 0
	for j, s := range series {
		if s.Values[i] < series[best].Values[i] {
			best = j
		}
	}

	return best
}

func findPriciest(series []bench.Series, i int) int {
	worst := 0
	for j, s := range series {
		if s.Values[i] > series[worst].Values[i] {
			worst = j
		}
	}

	return worst
}

func formatGas(gas int64) string {
	if gas < 1000 {
		return fmt.Sprintf("%d", gas)
	}

	return fmt.Sprintf("%d (%s)", gas, unitconv.FormatPrefix(float64(gas), unitconv.SI, 2))
}
