package workload_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avoskan/graphrat/maze"
	"github.com/avoskan/graphrat/rats"
	"github.com/avoskan/graphrat/workload"
)

const suiteYAML = `
workloads:
  - name: small
    tree:
      width: 8
      height: 8
      uniform_x: 2
      uniform_y: 2
    graph:
      regions: true
      svg: true
    rats:
      - mode: uniform
        load: 2
        seed: 418
  - name: grown
    tree:
      width: 16
      height: 16
      leaves: 6
      seed: 7
      hilbert: true
    graph:
      expansion: 2
      ilf:
        low: 1.0
        high: 2.0
    rats:
      - mode: center
        load: 1
`

func TestLoadDefaults(t *testing.T) {
	s, err := workload.Load(strings.NewReader(suiteYAML))
	require.NoError(t, err)
	require.Len(t, s.Workloads, 2)

	small := s.Workloads[0]
	require.Equal(t, maze.DefaultExpansion, small.Graph.Expansion)
	require.Equal(t, maze.DefaultILFLow, small.Graph.ILF.Low)
	require.Equal(t, maze.DefaultILFHigh, small.Graph.ILF.High)

	grown := s.Workloads[1]
	require.Equal(t, 2, grown.Graph.Expansion)
	require.Equal(t, 1.0, grown.Graph.ILF.Low)
}

func TestLoadRejectsUnknownField(t *testing.T) {
	input := "workloads:\n  - name: w\n    tree:\n      width: 4\n      height: 4\n      levaes: 3\n"
	_, err := workload.Load(strings.NewReader(input))
	require.Error(t, err)
	require.Contains(t, err.Error(), "levaes")
}

func TestLoadEmptySuite(t *testing.T) {
	_, err := workload.Load(strings.NewReader("workloads: []\n"))
	require.ErrorIs(t, err, workload.ErrEmptySuite)
}

func TestLoadInvalidSpecs(t *testing.T) {
	cases := []struct {
		name  string
		yaml  string
		check func(t *testing.T, err error)
	}{
		{
			"Unnamed",
			"workloads:\n  - tree: {width: 4, height: 4, leaves: 2}\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
		{
			"BadDimensions",
			"workloads:\n  - name: w\n    tree: {width: 0, height: 4, leaves: 2}\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
		{
			"HalfUniform",
			"workloads:\n  - name: w\n    tree: {width: 4, height: 4, uniform_x: 2}\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
		{
			"NoLeaves",
			"workloads:\n  - name: w\n    tree: {width: 4, height: 4}\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
		{
			"BadILF",
			"workloads:\n  - name: w\n    tree: {width: 4, height: 4, leaves: 2}\n    graph: {ilf: {low: 2.0, high: 1.0}}\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
		{
			"BadRatMode",
			"workloads:\n  - name: w\n    tree: {width: 4, height: 4, leaves: 2}\n    rats: [{mode: spiral, load: 1}]\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, rats.ErrBadMode) },
		},
		{
			"BadRatLoad",
			"workloads:\n  - name: w\n    tree: {width: 4, height: 4, leaves: 2}\n    rats: [{mode: uniform, load: 0}]\n",
			func(t *testing.T, err error) { require.ErrorIs(t, err, workload.ErrInvalidSpec) },
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := workload.Load(strings.NewReader(tc.yaml))
			tc.check(t, err)
		})
	}
}

// TestRun generates a suite into a temp dir and reloads the outputs.
func TestRun(t *testing.T) {
	s, err := workload.Load(strings.NewReader(suiteYAML))
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, s.Run(dir))

	for _, name := range []string{
		"small.tree", "small.graph", "small.svg", "small-uniform-2.rats",
		"grown.tree", "grown.graph", "grown-center-1.rats",
	} {
		_, statErr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, statErr, name)
	}
	_, err = os.Stat(filepath.Join(dir, "grown.svg"))
	require.True(t, os.IsNotExist(err), "svg must be opt-in")

	f, err := os.Open(filepath.Join(dir, "small.graph"))
	require.NoError(t, err)
	defer f.Close()
	g, err := maze.Load(f)
	require.NoError(t, err)
	require.Equal(t, 8, g.Width)
	require.Len(t, g.Regions, 4)

	ratData, err := os.ReadFile(filepath.Join(dir, "small-uniform-2.rats"))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(ratData), "64 128\n"))
}

func TestRunFailsOnGeometry(t *testing.T) {
	// A Hilbert tree on an odd grid can never split, so the run fails
	// before writing the graph.
	input := "workloads:\n  - name: odd\n    tree: {width: 15, height: 15, leaves: 4, hilbert: true}\n"
	s, err := workload.Load(strings.NewReader(input))
	require.NoError(t, err)
	err = s.Run(t.TempDir())
	require.Error(t, err)
	require.Contains(t, err.Error(), `workload "odd"`)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := workload.LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
