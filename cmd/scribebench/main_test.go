package main

import (
	"bytes"
	"context"
	"encoding/json"
	"image/png"
	"io"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/chronicleprotocol/scribebench/bench"
	"github.com/chronicleprotocol/scribebench/render"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd(discardLogger())

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())

	return out.String(), err
}

func requirePNG(t *testing.T, path string) {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = png.DecodeConfig(f)
	require.NoError(t, err)
}

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains: it changes
// the working directory and restores it when the test finishes.
func chdir(t *testing.T, dir string) {
	t.Helper()

	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(prev))
	})
}

func TestRootWritesChart(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	require.NoError(t, err)
	requirePNG(t, outputPath)
}

func TestRootIsIdempotent(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t)
	require.NoError(t, err)
	_, err = execute(t, "--renderer", render.NameGoChart)
	require.NoError(t, err)

	entries, err := os.ReadDir(".")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.Equal(t, outputPath, entries[0].Name())
	requirePNG(t, outputPath)
}

func TestRootRejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "extra")
	require.Error(t, err)

	_, err = os.Stat(outputPath)
	require.True(t, os.IsNotExist(err))
}

func TestRootUnknownRenderer(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := execute(t, "--renderer", "matplotlib")
	require.ErrorIs(t, err, render.ErrUnknownRenderer)
}

func TestRenderChartMismatchLeavesNoFile(t *testing.T) {
	chdir(t, t.TempDir())

	c := bench.Chart{
		X:       []int64{5, 10, 15},
		Series:  []bench.Series{{Name: "Scribe", Values: []int64{100, 200}}},
		Margins: bench.DefaultMargins,
	}

	err := renderChart(context.Background(), discardLogger(), render.NameGonum, c)
	require.ErrorIs(t, err, bench.ErrLengthMismatch)

	_, err = os.Stat(outputPath)
	require.True(t, os.IsNotExist(err))
}

func TestReportTable(t *testing.T) {
	out, err := execute(t, "report")
	require.NoError(t, err)
	require.Contains(t, out, "## Scribe Benchmark Results")
	require.Contains(t, out, "ScribeOptimistic")
}

func TestReportJSON(t *testing.T) {
	out, err := execute(t, "report", "--json")
	require.NoError(t, err)

	var c bench.Chart
	require.NoError(t, json.Unmarshal([]byte(out), &c))
	require.Equal(t, bench.Poke(), c)
}
