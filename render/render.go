// Package render draws benchmark charts as PNG images.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/chronicleprotocol/scribebench/bench"
)

// Renderer names accepted by New.
const (
	NameGonum   = "gonum"
	NameGoChart = "gochart"
)

// Figure size in pixels at 100 dpi.
const (
	figureWidthPx  = 640
	figureHeightPx = 480
	figureDPI      = 100
)

var ErrUnknownRenderer = errors.New("unknown renderer")

// Renderer encodes a chart as an image.
type Renderer interface {
	Render(w io.Writer, c bench.Chart) error
}

// Names returns the supported renderer names, default first.
func Names() []string {
	return []string{NameGonum, NameGoChart}
}

// New returns the renderer registered under name.
func New(name string) (Renderer, error) {
	switch name {
	case NameGonum, "":
		return Plot{}, nil
	case NameGoChart:
		return GoChart{}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownRenderer, name)
	}
}

// WriteFile renders c with r and writes the image to path, replacing any
// existing file. The image is encoded in memory first, so path is left
// untouched when the chart is invalid or rendering fails.
func WriteFile(
	ctx context.Context,
	logger *slog.Logger,
	r Renderer,
	c bench.Chart,
	path string,
) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("validate chart: %w", err)
	}

	logger.InfoContext(ctx, "rendering chart",
		slog.String("title", c.Title),
		slog.Int("series", len(c.Series)),
		slog.Int("points", len(c.X)),
	)

	var buf bytes.Buffer
	if err := r.Render(&buf, c); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	logger.InfoContext(ctx, "chart written",
		slog.String("path", path),
		slog.Int("bytes", buf.Len()),
	)

	return nil
}
