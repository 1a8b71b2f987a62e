package maze

import (
	"fmt"
	"sort"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/randutil"
)

// Generate synthesizes a grid graph from a finished partition tree.
//
// Steps, in RNG-stream order:
//  1. draw one ideal load factor per node, uniform in [ILFLow, ILFHigh);
//  2. insert 4-neighbor grid edges for every cell;
//  3. for each (expansion-scaled) leaf region, insert its hub set and
//     connect every hub to every other node of the region;
//  4. record region rectangles when opts.Regions is set.
//
// Complexity: O(V + Σ hubs×regionArea).
func Generate(tree *fractal.Tree, opts Options) (*Graph, error) {
	if opts.Expansion < 1 {
		return nil, fmt.Errorf("maze: Generate(expansion=%d): %w", opts.Expansion, ErrBadExpansion)
	}
	if opts.ILFHigh < opts.ILFLow || opts.ILFLow <= 0 {
		return nil, fmt.Errorf("maze: Generate(ilf=[%g,%g]): %w", opts.ILFLow, opts.ILFHigh, ErrBadILFRange)
	}
	g := &Graph{
		Width:     opts.Expansion * tree.Width(),
		Height:    opts.Expansion * tree.Height(),
		edges:     make(map[[2]int]struct{}),
		maxHubs:   opts.MaxHubs,
		minAspect: opts.MinAspect,
	}
	if g.maxHubs < 1 {
		g.maxHubs = DefaultMaxHubs
	}
	if g.minAspect <= 0 {
		g.minAspect = DefaultMinAspect
	}
	g.Comments = append(g.Comments,
		fmt.Sprintf("Parameters: expansion = %d, ilf = (%.2f,%.2f)", opts.Expansion, opts.ILFLow, opts.ILFHigh),
		"Region tree structure")
	g.Comments = append(g.Comments, tree.HeaderLines()...)

	rng := randutil.New(opts.Seed)
	g.ILF = make([]float64, g.NodeCount())
	for i := range g.ILF {
		g.ILF[i] = opts.ILFLow + rng.Float(opts.ILFHigh-opts.ILFLow)
	}

	// Grid edges. ID returns -1 off-grid, so boundary cells simply skip
	// the missing neighbors.
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			own := g.ID(r, c)
			for _, nb := range [4]int{g.ID(r-1, c), g.ID(r+1, c), g.ID(r, c-1), g.ID(r, c+1)} {
				if nb >= 0 {
					g.addEdge(own, nb)
				}
			}
			if g.errorCount > errorLimit {
				return nil, fmt.Errorf("maze: grid edges at (%d,%d): %w", r, c, ErrGeometryOverflow)
			}
		}
	}

	for rid, leaf := range tree.Leaves() {
		x := leaf.LeftX * opts.Expansion
		y := leaf.UpperY * opts.Expansion
		w := leaf.Width * opts.Expansion
		h := leaf.Height * opts.Expansion
		if opts.Regions {
			g.Regions = append(g.Regions, Region{ID: rid, X: x, Y: y, W: w, H: h, Zone: -1})
		}
		if err := g.connectHubs(x, y, w, h); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// HubList returns the hub coordinates (x, y) for a region rectangle: its
// center by default; maxHubs points spaced along the long axis when the
// aspect ratio reaches minAspect, the short side exceeds maxHubs, and the
// spacing leaves more than one cell between hubs. When both axes qualify
// the Y axis wins.
func (g *Graph) HubList(x, y, w, h int) [][2]int {
	cx, cy := x+w/2, y+h/2
	hubs := [][2]int{{cx, cy}}
	dx := w / (g.maxHubs + 1)
	dy := h / (g.maxHubs + 1)
	if float64(w) >= g.minAspect*float64(h) && w > g.maxHubs && dx > 1 {
		hubs = make([][2]int, g.maxHubs)
		for i := range hubs {
			hubs[i] = [2]int{x + (i+1)*dx, cy}
		}
	}
	if float64(h) >= g.minAspect*float64(w) && h > g.maxHubs && dy > 1 {
		hubs = make([][2]int, g.maxHubs)
		for i := range hubs {
			hubs[i] = [2]int{cx, y + (i+1)*dy}
		}
	}
	return hubs
}

// connectHubs inserts a direct edge from every hub of the region to every
// other node in it. Grid-adjacent pairs and hub self-edges deduplicate
// inside addEdge.
func (g *Graph) connectHubs(x, y, w, h int) error {
	for _, hub := range g.HubList(x, y, w, h) {
		hid := g.ID(hub[1], hub[0])
		for j := 0; j < w; j++ {
			for i := 0; i < h; i++ {
				g.addEdge(hid, g.ID(y+i, x+j))
				if g.errorCount > errorLimit {
					return fmt.Errorf("maze: hubs in region (%d,%d %dx%d): %w", x, y, w, h, ErrGeometryOverflow)
				}
			}
		}
	}
	return nil
}

// addEdge inserts the undirected edge {i, j}: both directions, no loops,
// repeated insertion is a no-op. Out-of-range endpoints only bump the
// error counter; the caller decides when too many is fatal. Reports
// whether the edge was newly added.
func (g *Graph) addEdge(i, j int) bool {
	n := g.NodeCount()
	if i < 0 || i >= n {
		g.errorCount++
	}
	if j < 0 || j >= n {
		g.errorCount++
	}
	if i == j || i < 0 || j < 0 || i >= n || j >= n {
		return false
	}
	if _, ok := g.edges[[2]int{i, j}]; ok {
		return false
	}
	g.edges[[2]int{i, j}] = struct{}{}
	g.edges[[2]int{j, i}] = struct{}{}
	return true
}

// sortEdges orders directed edges ascending by (i, j).
func sortEdges(es [][2]int) {
	sort.Slice(es, func(a, b int) bool {
		if es[a][0] != es[b][0] {
			return es[a][0] < es[b][0]
		}
		return es[a][1] < es[b][1]
	})
}
