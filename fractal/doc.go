// Package fractal builds spatial partition trees: a rectangle recursively
// subdivided into child rectangles whose leaves become the regions of a
// grid-graph workload.
//
// What:
//
//   - Grow — weighted random recursive subdivision, in plain fractal mode
//     (axis alternation, branch factors 2 and 3) or Hilbert mode, where a
//     12-state curve-continuity automaton dictates every split.
//   - Uniform — a deterministic xCount×yCount grid with no randomness.
//   - Basic — a single undivided root rectangle.
//   - Store/Load — the text tree format shared with the simulator tooling:
//     one record per node, descending id, root (id 1) last, so every child
//     record precedes its parent and single-pass loading can resolve
//     children against already-seen ids.
//   - RenderASCII — a box-drawing dump of the leaf regions.
//
// Invariants (checked by the test suite, relied on by package maze):
//
//   - A split node's children exactly tile its rectangle: no gaps, no
//     overlap, shared height for vertical splits, shared width for
//     horizontal splits.
//   - NodeCount() == 1 + Σ children's node counts; LeafCount() counts
//     Leaf-kind nodes transitively.
//   - The root always receives id 1; later nodes receive strictly larger
//     ids in creation order. The on-disk descending order depends on this.
//
// Errors:
//
//   - ErrBadDimension: non-positive width, height, or target leaf count.
//   - ErrNotDivisible: uniform grid count does not divide the dimension.
//   - ErrExhausted: random growth ran out of splittable leaves before
//     reaching the target leaf count.
//   - ErrBadRecord, ErrUnknownChild, ErrNoRoot: malformed tree files.
//
// Determinism: identical (dimensions, target, seed, options) reproduce the
// tree byte for byte; all randomness flows through one randutil.RNG.
package fractal
