// Package rats produces the initial agent occupancy of a grid graph:
// exactly nodeCount×load node ids, one rat per line, under one of four
// placement policies.
//
// Modes:
//
//   - Uniform  — every node id load times, randomly permuted.
//   - Diagonal — a single diagonal path proportional to the grid's
//     aspect ratio, tiled to the target count, permuted.
//   - Center   — the single center node, repeated, permuted.
//   - Random   — independent uniform draws with replacement; already
//     independent, so no permutation pass.
//
// File format: a `NodeCount RatCount` header line, '#' provenance
// comments, then RatCount node ids. Determinism follows randutil: same
// graph, mode, load, and seed give byte-identical output.
package rats
