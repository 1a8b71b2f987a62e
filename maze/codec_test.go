package maze_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
)

func generateFixture(t *testing.T, regions bool) *maze.Graph {
	t.Helper()
	tree, err := fractal.Uniform(8, 8, 2, 2)
	require.NoError(t, err)
	opts := maze.DefaultOptions()
	opts.Regions = regions
	g, err := maze.Generate(tree, opts)
	require.NoError(t, err)
	return g
}

// TestGraphRoundTrip: store, load, and compare. The reloaded graph
// stores to the same data lines (comments are not round-tripped).
func TestGraphRoundTrip(t *testing.T) {
	for _, regions := range []bool{false, true} {
		g := generateFixture(t, regions)
		var buf bytes.Buffer
		require.NoError(t, g.Store(&buf))

		loaded, err := maze.Load(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		require.Equal(t, g.Width, loaded.Width)
		require.Equal(t, g.Height, loaded.Height)
		require.Equal(t, g.EdgeCount(), loaded.EdgeCount())
		require.Equal(t, g.Edges(), loaded.Edges())
		require.Equal(t, g.Regions, loaded.Regions)
		require.InDeltaSlice(t, g.ILF, loaded.ILF, 1e-5)

		var again bytes.Buffer
		require.NoError(t, loaded.Store(&again))
		require.Equal(t, dataLines(buf.String()), dataLines(again.String()))
	}
}

// dataLines strips the comment block, leaving header and records.
func dataLines(s string) []string {
	var out []string
	for _, line := range strings.Split(s, "\n") {
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// TestLoadEdgeCountMismatch: a header declaring 10 edges over 8 edge
// lines must fail with no graph.
func TestLoadEdgeCountMismatch(t *testing.T) {
	var b strings.Builder
	b.WriteString("# truncated fixture\n")
	b.WriteString("2 2 10\n")
	for _, n := range []string{"n 0 1.50000", "n 1 1.50000", "n 2 1.50000", "n 3 1.50000"} {
		b.WriteString(n + "\n")
	}
	// 4 undirected edges as 8 directed lines, 2 short of the header.
	for _, e := range []string{"0 1", "1 0", "0 2", "2 0", "1 3", "3 1", "2 3", "3 2"} {
		b.WriteString("e " + e + "\n")
	}
	g, err := maze.Load(strings.NewReader(b.String()))
	require.ErrorIs(t, err, maze.ErrCountMismatch)
	require.Contains(t, err.Error(), "expected 10 edges, found 8")
	require.Nil(t, g)
}

func TestLoadNodeCountMismatch(t *testing.T) {
	input := "2 2 2\nn 0 1.40000\ne 0 1\ne 1 0\n"
	g, err := maze.Load(strings.NewReader(input))
	require.ErrorIs(t, err, maze.ErrCountMismatch)
	require.Nil(t, g)
}

func TestLoadRegionCountMismatch(t *testing.T) {
	input := "2 2 2 2\n" +
		"n 0 1.4\nn 1 1.4\nn 2 1.4\nn 3 1.4\n" +
		"e 0 1\ne 1 0\n" +
		"r 0 0 2 2\n"
	g, err := maze.Load(strings.NewReader(input))
	require.ErrorIs(t, err, maze.ErrCountMismatch)
	require.Nil(t, g)
}

func TestLoadBadInput(t *testing.T) {
	cases := []struct {
		name  string
		input string
		err   error
	}{
		{"Empty", "# nothing\n", maze.ErrBadHeader},
		{"ShortHeader", "4 4\n", maze.ErrBadHeader},
		{"LongHeader", "4 4 0 0 0\n", maze.ErrBadHeader},
		{"NonNumericHeader", "4 four 0\n", maze.ErrBadHeader},
		{"UnknownRecord", "2 2 0\nx 1 2\n", maze.ErrBadRecord},
		{"BadNodeRecord", "2 2 0\nn 0\n", maze.ErrBadRecord},
		{"BadNodeID", "2 2 0\nn x 1.4\n", maze.ErrBadRecord},
		{"NodeIDOutOfOrder", "2 2 0\nn 1 1.4\nn 0 1.4\n", maze.ErrBadRecord},
		{"NodeIDRepeated", "2 2 0\nn 0 1.4\nn 0 1.6\n", maze.ErrBadRecord},
		{"BadEdgeRecord", "2 2 0\ne 0 x\n", maze.ErrBadRecord},
		{"BadRegionRecord", "2 2 0 1\nr 0 0 2\n", maze.ErrBadRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := maze.Load(strings.NewReader(tc.input))
			require.ErrorIs(t, err, tc.err)
			require.Nil(t, g)
		})
	}
}

// TestStoreHeaderShape: the region count appears in the header exactly
// when regions are present.
func TestStoreHeaderShape(t *testing.T) {
	plain := generateFixture(t, false)
	var buf bytes.Buffer
	require.NoError(t, plain.Store(&buf))
	require.Len(t, strings.Fields(dataLines(buf.String())[0]), 3)

	withRegions := generateFixture(t, true)
	buf.Reset()
	require.NoError(t, withRegions.Store(&buf))
	header := strings.Fields(dataLines(buf.String())[0])
	require.Len(t, header, 4)
	require.Equal(t, "4", header[3])
}
