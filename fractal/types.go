// Package fractal core types: Kind, Rect, Node, Tree, and growth options.
package fractal

import (
	"fmt"
	"math"
)

// Kind classifies a partition node by how it was split.
type Kind byte

const (
	// Leaf is an undivided rectangle, a final region.
	Leaf Kind = 'L'
	// SplitHorizontal stacks children top-to-bottom (split along Y).
	SplitHorizontal Kind = 'H'
	// SplitVertical lays children left-to-right (split along X).
	SplitVertical Kind = 'V'
)

// String returns the single-letter file-format spelling of k.
func (k Kind) String() string { return string(byte(k)) }

// parseKind maps a record field to a Kind.
func parseKind(s string) (Kind, bool) {
	switch s {
	case "L":
		return Leaf, true
	case "H":
		return SplitHorizontal, true
	case "V":
		return SplitVertical, true
	}
	return 0, false
}

// Rect is an axis-aligned rectangle in grid coordinates. UpperY grows
// downward, matching the grid graph's row-major node numbering.
type Rect struct {
	Width, Height int
	LeftX, UpperY int
}

// Area returns Width×Height.
func (rc Rect) Area() int { return rc.Width * rc.Height }

// centroidDist2 is the squared Euclidean distance of the rectangle's
// center from the origin, used by the growth weight.
func (rc Rect) centroidDist2() float64 {
	cx := float64(rc.LeftX) + float64(rc.Width)/2
	cy := float64(rc.UpperY) + float64(rc.Height)/2
	return cx*cx + cy*cy
}

// Node is one rectangle of the partition. Nodes live in an arena owned by
// their Tree and reference each other by id only: Parent is 0 for the
// root, Children is ordered and empty for leaves.
type Node struct {
	ID       int
	Kind     Kind
	Rect
	Parent   int
	Children []int

	// state drives Hilbert-mode branching; zero outside Hilbert trees.
	state curveState
}

// weight biases leaf selection during random growth:
// area^areaExp × centroidDist²^distExp.
func (n *Node) weight(areaExp, distExp float64) float64 {
	return math.Pow(float64(n.Area()), areaExp) * math.Pow(n.centroidDist2(), distExp)
}

// Tree owns a partition's node arena. A Tree is built once (Grow, Uniform,
// Basic, or Load) and frozen; nothing mutates it afterwards.
type Tree struct {
	nodes  map[int]*Node
	rootID int
	nextID int

	nodeCount int
	leafCount int

	seed             int64
	uniformX         int // nonzero only for Uniform trees
	uniformY         int
	areaExponent     float64
	distanceExponent float64
}

// GrowOptions tunes random growth. The zero value is the reference
// configuration: uniform leaf selection, plain fractal branching.
type GrowOptions struct {
	// AreaExponent raises each leaf's area in the selection weight.
	AreaExponent float64
	// DistanceExponent raises each leaf's squared centroid distance
	// from the origin in the selection weight.
	DistanceExponent float64
	// Hilbert switches branching to the curve-continuity automaton.
	Hilbert bool
}

// DefaultGrowOptions returns the reference growth configuration.
func DefaultGrowOptions() GrowOptions { return GrowOptions{} }

func newTree(seed int64) *Tree {
	return &Tree{nodes: make(map[int]*Node), seed: seed}
}

// newNode allocates the next id and registers a leaf with the given
// geometry. The first allocation is id 1 and becomes the root.
func (t *Tree) newNode(rc Rect) *Node {
	t.nextID++
	n := &Node{ID: t.nextID, Kind: Leaf, Rect: rc, Children: []int{}}
	t.nodes[n.ID] = n
	if t.rootID == 0 {
		t.rootID = n.ID
	}
	return n
}

// addChild appends child to parent's ordered child list.
func (t *Tree) addChild(parent, child *Node) {
	parent.Children = append(parent.Children, child.ID)
	child.Parent = parent.ID
}

// finish freezes the tree: node and leaf counts are computed once here.
func (t *Tree) finish() {
	t.nodeCount = t.countNodes(t.root())
	t.leafCount = t.countLeaves(t.root())
}

func (t *Tree) countNodes(n *Node) int {
	count := 1
	for _, id := range n.Children {
		count += t.countNodes(t.nodes[id])
	}
	return count
}

func (t *Tree) countLeaves(n *Node) int {
	if n.Kind == Leaf {
		return 1
	}
	count := 0
	for _, id := range n.Children {
		count += t.countLeaves(t.nodes[id])
	}
	return count
}

func (t *Tree) root() *Node { return t.nodes[t.rootID] }

// Root returns the root node.
func (t *Tree) Root() *Node { return t.root() }

// Node returns the node with the given id, if present.
func (t *Tree) Node(id int) (*Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Width returns the root rectangle's width.
func (t *Tree) Width() int { return t.root().Width }

// Height returns the root rectangle's height.
func (t *Tree) Height() int { return t.root().Height }

// NodeCount returns the total number of nodes.
func (t *Tree) NodeCount() int { return t.nodeCount }

// LeafCount returns the number of Leaf-kind nodes.
func (t *Tree) LeafCount() int { return t.leafCount }

// Seed returns the seed used for random growth (0 for loaded trees).
func (t *Tree) Seed() int64 { return t.seed }

// Leaves returns all leaf nodes in depth-first child order, the order
// region ids are assigned downstream.
// Complexity: O(n).
func (t *Tree) Leaves() []*Node {
	var out []*Node
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind == Leaf {
			out = append(out, n)
			return
		}
		for _, id := range n.Children {
			walk(t.nodes[id])
		}
	}
	walk(t.root())
	return out
}

// HeaderLines describes the tree for provenance comment blocks: counts,
// dimensions, and how it was generated.
func (t *Tree) HeaderLines() []string {
	var lines []string
	if t.Width() == 0 || t.Height() == 0 {
		lines = append(lines, "Empty Tree")
	}
	lines = append(lines,
		fmt.Sprintf("Nodes: %d", t.nodeCount),
		fmt.Sprintf("Leaves: %d", t.leafCount),
		fmt.Sprintf("Width: %d", t.Width()),
		fmt.Sprintf("Height: %d", t.Height()),
	)
	switch {
	case t.uniformX != 0:
		lines = append(lines, fmt.Sprintf("Uniform %d X %d grid", t.uniformX, t.uniformY))
	default:
		lines = append(lines, fmt.Sprintf("Fractal grid generated with initial seed: %d", t.seed))
	}
	return lines
}
