// Package bench holds the benchmark chart model and the compiled-in
// gas measurements of the Scribe contracts.
package bench

import (
	"errors"
	"fmt"
)

var (
	ErrNoSeries        = errors.New("chart has no series")
	ErrEmptyAxis       = errors.New("chart has no x values")
	ErrLengthMismatch  = errors.New("series length does not match x axis")
	ErrUnnamedSeries   = errors.New("series has no name")
	ErrDuplicateSeries = errors.New("duplicate series name")
	ErrBadMargins      = errors.New("invalid margins")
)

// Series is one named line of gas measurements, one value per x position.
type Series struct {
	Name   string  `json:"name"`
	Values []int64 `json:"values"`
}

// Margins position the plot area inside the figure. All fields are
// fractions of the figure size: Left and Bottom are where the plot area
// starts, Right and Top are where it ends.
type Margins struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// DefaultMargins leaves extra room on the left for wide gas tick labels.
var DefaultMargins = Margins{Left: 0.2, Right: 0.9, Bottom: 0.1, Top: 0.9}

// Chart is a set of series sharing one x axis plus its presentation
// metadata.
type Chart struct {
	Title   string   `json:"title"`
	XLabel  string   `json:"x_label"`
	YLabel  string   `json:"y_label"`
	X       []int64  `json:"x"`
	Series  []Series `json:"series"`
	Margins Margins  `json:"margins"`
}

// Validate reports whether c can be rendered.
func (c Chart) Validate() error {
	if len(c.Series) == 0 {
		return ErrNoSeries
	}

	if len(c.X) == 0 {
		return ErrEmptyAxis
	}

	seen := make(map[string]struct{}, len(c.Series))

	for i, s := range c.Series {
		if s.Name == "" {
			return fmt.Errorf("series %d: %w", i, ErrUnnamedSeries)
		}

		if _, ok := seen[s.Name]; ok {
			return fmt.Errorf("series %q: %w", s.Name, ErrDuplicateSeries)
		}

		seen[s.Name] = struct{}{}

		if len(s.Values) != len(c.X) {
			return fmt.Errorf("series %q has %d values, x axis has %d: %w",
				s.Name, len(s.Values), len(c.X), ErrLengthMismatch,
			)
		}
	}

	return c.Margins.validate()
}

func (m Margins) validate() error {
	for _, v := range []float64{m.Left, m.Right, m.Bottom, m.Top} {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: %+v outside [0, 1]", ErrBadMargins, m)
		}
	}

	if m.Left >= m.Right || m.Bottom >= m.Top {
		return fmt.Errorf("%w: %+v leaves no plot area", ErrBadMargins, m)
	}

	return nil
}

// Points returns the (x, y) pairs of the i-th series.
func (c Chart) Points(i int) [][2]int64 {
	s := c.Series[i]
	n := min(len(c.X), len(s.Values))

	pts := make([][2]int64, n)
	for j := 0; j < n; j++ {
		pts[j] = [2]int64{c.X[j], s.Values[j]}
	}

	return pts
}
