// Package graphrat generates deterministic, seed-reproducible workloads
// for the graph-rats multi-agent simulation benchmark: spatial partition
// trees, the grid graphs derived from them, and initial rat placements.
//
// 🐀 What is graphrat?
//
//	A small, deterministic workload synthesizer that brings together:
//		• randutil — a Lehmer-style seeded RNG with weighted selection & shuffles
//		• fractal  — partition trees: random fractal growth, Hilbert-curve
//		             growth (12-state automaton), uniform grids, text codec
//		• maze     — grid graphs with hub-accelerated regions, load factors,
//		             region metadata, summary statistics and SVG rendering
//		• rats     — initial agent placement under four policies
//		• workload — YAML suite descriptions for batch generation
//
// ✨ Why choose graphrat?
//
//   - Reproducible – identical (seed, dimensions, parameters) yield
//     byte-identical output across processes and machines
//   - Strict formats – round-trip text codecs with hard count validation
//   - Pure library – no globals, every generator threads its own RNG;
//     cmd/graphrat is a thin cobra wrapper over the same API
//
// The generated files feed an external simulator and benchmark driver;
// neither is part of this module. See each subpackage's doc.go for the
// full contract, and cmd/graphrat for the command-line surface.
package graphrat
