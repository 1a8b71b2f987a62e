package rats

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"github.com/avoskan/graphrat/maze"
	"github.com/avoskan/graphrat/randutil"
)

// Sentinel errors for placement generation.
var (
	// ErrBadMode indicates an unrecognized placement mode.
	ErrBadMode = errors.New("rats: invalid placement mode")
	// ErrBadLoad indicates a non-positive load multiplier.
	ErrBadLoad = errors.New("rats: load must be positive")
)

// Mode selects a placement policy.
type Mode int

const (
	Random Mode = iota
	Uniform
	Diagonal
	Center
)

var modeNames = [...]string{"random", "uniform", "diagonal", "center"}

// String returns the mode's flag spelling.
func (m Mode) String() string {
	if m < Random || m > Center {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// ParseMode maps a flag spelling to its Mode.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return 0, fmt.Errorf("rats: mode %q: %w", s, ErrBadMode)
}

// Generate returns the initial occupancy: nodeCount×load node ids in
// placement order. Complexity: O(nodeCount×load).
func Generate(g *maze.Graph, mode Mode, load int, seed int64) ([]int, error) {
	if load < 1 {
		return nil, fmt.Errorf("rats: Generate(load=%d): %w", load, ErrBadLoad)
	}
	nodeCount := g.NodeCount()
	ratCount := nodeCount * load
	rng := randutil.New(seed)

	if mode == Random {
		out := make([]int, ratCount)
		for i := range out {
			out[i] = rng.Int(0, nodeCount-1)
		}
		return out, nil
	}

	var base []int
	switch mode {
	case Uniform:
		base = make([]int, nodeCount)
		for i := range base {
			base[i] = i
		}
	case Diagonal:
		// One id per step along the long axis, stepping the short axis
		// by the aspect ratio.
		if g.Width >= g.Height {
			aspect := float64(g.Height) / float64(g.Width)
			for c := 0; c < g.Width; c++ {
				base = append(base, g.ID(int(aspect*float64(c)), c))
			}
		} else {
			aspect := float64(g.Width) / float64(g.Height)
			for r := 0; r < g.Height; r++ {
				base = append(base, g.ID(r, int(aspect*float64(r))))
			}
		}
	case Center:
		base = []int{g.ID(g.Height/2, g.Width/2)}
	default:
		return nil, fmt.Errorf("rats: Generate(mode=%d): %w", int(mode), ErrBadMode)
	}

	factor := ratCount / len(base)
	full := make([]int, 0, factor*len(base))
	for i := 0; i < factor; i++ {
		full = append(full, base...)
	}
	randutil.Shuffle(rng, full)
	return full, nil
}

// Store generates placements and writes the rat file: header line,
// provenance comments, one node id per line.
func Store(w io.Writer, g *maze.Graph, mode Mode, load int, seed int64, comments ...string) error {
	ids, err := Generate(g, mode, load, seed)
	if err != nil {
		return err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d %d\n", g.NodeCount(), len(ids))
	for _, c := range comments {
		fmt.Fprintf(bw, "# %s\n", c)
	}
	fmt.Fprintf(bw, "# Parameters: load = %d, mode = %s, seed = %d\n", load, mode, seed)
	for _, id := range ids {
		fmt.Fprintf(bw, "%d\n", id)
	}
	return bw.Flush()
}
