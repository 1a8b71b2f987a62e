package maze_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
)

// TestSummarizeSmallGrid pins the figures for a 2x2 single-region graph:
// 4 grid edges plus one hub edge (3-0), degrees with the implicit self
// slot are [4 3 3 4].
func TestSummarizeSmallGrid(t *testing.T) {
	tree, err := fractal.Basic(2, 2)
	require.NoError(t, err)
	g, err := maze.Generate(tree, maze.DefaultOptions())
	require.NoError(t, err)

	s := g.Summarize()
	require.Equal(t, 4, s.Nodes)
	require.Equal(t, 5, s.Edges)
	require.Equal(t, 0, s.Regions)
	require.InDelta(t, 3.5, s.MeanDegree, 1e-12)
	require.InDelta(t, math.Sqrt(1.0/3.0), s.StdDevDegree, 1e-9)
	require.Equal(t, 4.0, s.MaxDegree)
	require.GreaterOrEqual(t, s.MeanILF, maze.DefaultILFLow)
	require.Less(t, s.MeanILF, maze.DefaultILFHigh)
}

func TestSummarizeRegions(t *testing.T) {
	tree, err := fractal.Uniform(8, 8, 2, 2)
	require.NoError(t, err)
	opts := maze.DefaultOptions()
	opts.Regions = true
	g, err := maze.Generate(tree, opts)
	require.NoError(t, err)
	require.Equal(t, 4, g.Summarize().Regions)
}

func TestSummaryWrite(t *testing.T) {
	s := maze.Summary{
		Nodes: 4, Edges: 5,
		MeanDegree: 3.5, StdDevDegree: 0.577, MaxDegree: 4,
		MeanILF: 1.5, StdDevILF: 0.1,
	}
	var buf strings.Builder
	require.NoError(t, s.Write(&buf))
	out := buf.String()
	require.Contains(t, out, "nodes:   4")
	require.Contains(t, out, "edges:   5")
	require.Contains(t, out, "degree:  mean 3.500, stddev 0.577, max 4")
	require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 5)
}
