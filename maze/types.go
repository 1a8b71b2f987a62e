package maze

import "github.com/avoskan/graphrat/randutil"

// Default generation parameters, fixed by the reference workloads.
const (
	// DefaultExpansion scales tree rectangles into grid rectangles.
	DefaultExpansion = 1
	// DefaultILFLow and DefaultILFHigh bound the per-node ideal load
	// factor draw.
	DefaultILFLow  = 1.2
	DefaultILFHigh = 1.8
	// DefaultMaxHubs is how many hubs an elongated region receives.
	DefaultMaxHubs = 3
	// DefaultMinAspect is the width:height (or height:width) ratio at
	// which a region trades its central hub for DefaultMaxHubs spaced ones.
	DefaultMinAspect = 2.0

	// errorLimit bounds tolerated out-of-range edge endpoints before
	// generation aborts; malformed geometry is not recoverable.
	errorLimit = 5
)

// Options configures Generate.
type Options struct {
	// Expansion multiplies every tree coordinate; the graph is
	// Expansion×treeWidth by Expansion×treeHeight.
	Expansion int
	// ILFLow, ILFHigh bound the uniform ideal-load-factor draw.
	ILFLow, ILFHigh float64
	// Seed seeds the load-factor RNG.
	Seed int64
	// Regions records each leaf rectangle for the output file.
	Regions bool
	// MaxHubs and MinAspect tune multi-hub placement.
	MaxHubs   int
	MinAspect float64
}

// DefaultOptions returns the reference generation parameters.
func DefaultOptions() Options {
	return Options{
		Expansion: DefaultExpansion,
		ILFLow:    DefaultILFLow,
		ILFHigh:   DefaultILFHigh,
		Seed:      randutil.DefaultSeed,
		MaxHubs:   DefaultMaxHubs,
		MinAspect: DefaultMinAspect,
	}
}

// Region is a partition leaf's rectangle as exported with the graph.
// Zone is presentation-only coloring metadata; negative means unzoned.
type Region struct {
	ID   int
	X, Y int
	W, H int
	Zone int
}

// NodeCount returns the number of grid nodes the region covers.
func (r Region) NodeCount() int { return r.W * r.H }

// Graph is a grid graph with hub shortcuts. It is immutable once built
// or loaded; the edge map is populated only during construction.
type Graph struct {
	Width, Height int

	// ILF holds each node's ideal load factor, indexed by node id.
	ILF []float64
	// Regions lists exported partition leaves, in region-id order.
	Regions []Region
	// Comments is the free-text provenance block for Store.
	Comments []string

	edges      map[[2]int]struct{}
	maxHubs    int
	minAspect  float64
	errorCount int
}

// NodeCount returns Width×Height.
func (g *Graph) NodeCount() int { return g.Width * g.Height }

// EdgeCount returns the number of directed edges; every undirected edge
// counts twice.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// ID maps (row, col) to a row-major node id, or -1 outside the grid.
func (g *Graph) ID(row, col int) int {
	if row < 0 || row >= g.Height || col < 0 || col >= g.Width {
		return -1
	}
	return row*g.Width + col
}

// RowColumn inverts ID.
func (g *Graph) RowColumn(id int) (row, col int) {
	return id / g.Width, id % g.Width
}

// HasEdge reports whether the directed edge (i, j) is present.
func (g *Graph) HasEdge(i, j int) bool {
	_, ok := g.edges[[2]int{i, j}]
	return ok
}

// Edges returns all directed edges in ascending (i, j) order, the order
// they are stored on disk.
// Complexity: O(E log E).
func (g *Graph) Edges() [][2]int {
	out := make([][2]int, 0, len(g.edges))
	for e := range g.edges {
		out = append(out, e)
	}
	sortEdges(out)
	return out
}

// Degrees returns each node's degree including itself, the quantity the
// simulator balances load against.
// Complexity: O(V+E).
func (g *Graph) Degrees() []int {
	out := make([]int, g.NodeCount())
	for i := range out {
		out[i] = 1
	}
	for e := range g.edges {
		out[e[0]]++
	}
	return out
}
