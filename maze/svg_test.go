package maze_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
)

func TestRenderSVG(t *testing.T) {
	tree, err := fractal.Uniform(8, 8, 2, 2)
	require.NoError(t, err)
	opts := maze.DefaultOptions()
	opts.Regions = true
	g, err := maze.Generate(tree, opts)
	require.NoError(t, err)

	var buf strings.Builder
	g.RenderSVG(&buf, maze.DefaultGridSpacing)
	out := buf.String()
	require.True(t, strings.HasPrefix(out, "<?xml"))
	require.Contains(t, out, "</svg>")
	require.Contains(t, out, `width="40"`)
	require.Contains(t, out, "fill:red") // hub markers
	// One grid line per column and row boundary plus the four region
	// outlines, the bounding box, and the hub markers.
	require.Equal(t, 18, strings.Count(out, "<line"))
	require.GreaterOrEqual(t, strings.Count(out, "<rect"), 9)
}
