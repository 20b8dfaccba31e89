package render

import (
	"fmt"
	"image/color"
	"io"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/chronicleprotocol/scribebench/bench"
)

const (
	figureWidth  = vg.Length(figureWidthPx) / figureDPI * vg.Inch
	figureHeight = vg.Length(figureHeightPx) / figureDPI * vg.Inch
)

// Plot renders charts with gonum/plot.
type Plot struct{}

// Render draws c and writes it to w as a PNG.
func (Plot) Render(w io.Writer, c bench.Chart) error {
	l, err := layoutPlot(c)
	if err != nil {
		return err
	}

	img := vgimg.NewWith(
		vgimg.UseWH(figureWidth, figureHeight),
		vgimg.UseDPI(figureDPI),
	)

	m := c.Margins
	dc := draw.Crop(draw.New(img),
		vg.Length(m.Left)*figureWidth,
		-vg.Length(1-m.Right)*figureWidth,
		vg.Length(m.Bottom)*figureHeight,
		-vg.Length(1-m.Top)*figureHeight,
	)
	l.plot.Draw(dc)

	if _, err := (vgimg.PngCanvas{Canvas: img}).WriteTo(w); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}

	return nil
}

// plotLayout is a plot ready to be drawn together with the parts added
// to it, one line and one legend label per series.
type plotLayout struct {
	plot   *plot.Plot
	lines  []*plotter.Line
	labels []string
}

func layoutPlot(c bench.Chart) (*plotLayout, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := plot.New()

	p.Title.Text = c.Title
	p.X.Label.Text = c.XLabel
	p.Y.Label.Text = c.YLabel
	p.Y.Tick.Marker = gasTicks{}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.Padding = vg.Millimeter

	colors, err := seriesColors(len(c.Series))
	if err != nil {
		return nil, err
	}

	l := &plotLayout{
		plot:   p,
		lines:  make([]*plotter.Line, 0, len(c.Series)),
		labels: make([]string, 0, len(c.Series)),
	}

	for i, s := range c.Series {
		var pts plotter.XYs
		for _, pt := range c.Points(i) {
			pts = append(pts, plotter.XY{X: float64(pt[0]), Y: float64(pt[1])})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, fmt.Errorf("series %q: %w", s.Name, err)
		}

		line.LineStyle.Color = colors[i%len(colors)]
		line.LineStyle.Width = vg.Points(1.5)

		p.Add(line)
		p.Legend.Add(s.Name, line)

		l.lines = append(l.lines, line)
		l.labels = append(l.labels, s.Name)
	}

	return l, nil
}

// Dark2 has between 3 and 8 colors.
func seriesColors(n int) ([]color.Color, error) {
	palette, err := brewer.GetPalette(
		brewer.TypeQualitative, "Dark2", min(max(n, 3), 8),
	)
	if err != nil {
		return nil, fmt.Errorf("series palette: %w", err)
	}

	return palette.Colors(), nil
}

// gasTicks labels gas values as plain integers instead of exponent form.
type gasTicks struct{}

func (gasTicks) Ticks(lo, hi float64) []plot.Tick {
	ticks := plot.DefaultTicks{}.Ticks(lo, hi)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = strconv.FormatFloat(ticks[i].Value, 'f', -1, 64)
		}
	}

	return ticks
}
