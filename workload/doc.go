// Package workload loads YAML suite descriptions and runs them: each
// workload names a partition tree, the graph derived from it, and any
// number of rat placements, and Run writes the corresponding .tree,
// .graph, .svg, and .rats files into an output directory.
//
// A suite file looks like:
//
//	workloads:
//	  - name: fractal-36
//	    tree:
//	      width: 36
//	      height: 36
//	      leaves: 20
//	      seed: 418
//	    graph:
//	      expansion: 2
//	      ilf: {low: 1.2, high: 1.8}
//	      seed: 418
//	      regions: true
//	    rats:
//	      - {mode: uniform, load: 2, seed: 418}
//
// Validation is strict and happens entirely at load time: a suite either
// parses and validates completely or Run never starts.
package workload
