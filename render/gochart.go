package render

import (
	"fmt"
	"io"
	"math"
	"strconv"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/chronicleprotocol/scribebench/bench"
)

// GoChart renders charts with go-chart.
type GoChart struct{}

// Render draws c and writes it to w as a PNG.
func (GoChart) Render(w io.Writer, c bench.Chart) error {
	ch, err := layoutGoChart(c)
	if err != nil {
		return err
	}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}

	return nil
}

func layoutGoChart(c bench.Chart) (*chart.Chart, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	series := make([]chart.Series, 0, len(c.Series))

	for i, s := range c.Series {
		pts := c.Points(i)
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for j, pt := range pts {
			xs[j] = float64(pt[0])
			ys[j] = float64(pt[1])
		}

		// go-chart cannot derive a range from a single x value.
		if len(xs) == 1 {
			xs = append(xs, xs[0]+1)
			ys = append(ys, ys[0])
		}

		series = append(series, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: chart.GetDefaultColor(i),
				StrokeWidth: 1.5,
			},
		})
	}

	m := c.Margins
	ch := &chart.Chart{
		Title:  c.Title,
		Width:  figureWidthPx,
		Height: figureHeightPx,
		DPI:    figureDPI,
		Background: chart.Style{Padding: chart.Box{
			Top:    pixels(1-m.Top, figureHeightPx),
			Left:   pixels(m.Left, figureWidthPx),
			Right:  pixels(1-m.Right, figureWidthPx),
			Bottom: pixels(m.Bottom, figureHeightPx),
		}},
		XAxis:  chart.XAxis{Name: c.XLabel, ValueFormatter: integerFormatter},
		YAxis:  chart.YAxis{Name: c.YLabel, ValueFormatter: integerFormatter},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(ch)}

	return ch, nil
}

func integerFormatter(v interface{}) string {
	if f, ok := v.(float64); ok {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}

	return fmt.Sprintf("%v", v)
}

func pixels(frac float64, size int) int {
	return int(math.Round(frac * float64(size)))
}
