// Package maze turns a partition tree into the grid graph the simulator
// runs on: a width×height lattice of nodes with 4-neighbor edges, per-node
// ideal load factors, and hub-accelerated connectivity inside each
// partition region.
//
// What:
//
//   - Generate — scales a fractal.Tree by an expansion factor, draws an
//     ideal load factor per node, inserts grid edges, then gives every
//     leaf region a hub set: one central hub by default, or up to MaxHubs
//     hubs spaced along the long axis of sufficiently elongated regions.
//     Each hub is connected directly to every other node of its region,
//     bounding intra-region path length independent of region size.
//   - Store/Load — the graph text format: '# ' provenance comments, a
//     `Width Height EdgeCount [RegionCount]` header, one `n id ilf` line
//     per node, one `e i j` line per directed edge (both directions of
//     every undirected edge), optional `r x y w h` region lines. Load
//     validates record counts against the header exactly; any mismatch
//     discards the partial graph.
//   - Summarize — degree and load-factor statistics (gonum/stat).
//   - RenderSVG — regions, hubs, and the grid as an SVG drawing.
//
// Invariants:
//
//   - The edge set is symmetric and loop-free: (i,j) present ⇒ (j,i)
//     present, never (i,i). Re-inserting an edge is a no-op.
//   - Edge endpoints are validated against [0, nodeCount); generation
//     aborts with ErrGeometryOverflow once more than errorLimit bad
//     endpoints accumulate.
//
// Determinism: one randutil.RNG seeded per Generate call produces all
// load factors; identical inputs give byte-identical stored graphs.
package maze
