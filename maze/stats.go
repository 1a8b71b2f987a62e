package maze

import (
	"fmt"
	"io"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary aggregates the distribution figures the benchmark driver cares
// about when sizing runs: graph shape, degree spread, and load spread.
type Summary struct {
	Nodes   int
	Edges   int // undirected edge count
	Regions int

	MeanDegree   float64
	StdDevDegree float64
	MaxDegree    float64

	MeanILF   float64
	StdDevILF float64
}

// Summarize computes degree and ideal-load-factor statistics.
// Complexity: O(V+E).
func (g *Graph) Summarize() Summary {
	degrees := g.Degrees()
	dd := make([]float64, len(degrees))
	for i, d := range degrees {
		dd[i] = float64(d)
	}
	s := Summary{
		Nodes:   g.NodeCount(),
		Edges:   g.EdgeCount() / 2,
		Regions: len(g.Regions),
	}
	if len(dd) > 0 {
		s.MeanDegree = stat.Mean(dd, nil)
		s.StdDevDegree = stat.StdDev(dd, nil)
		s.MaxDegree = floats.Max(dd)
	}
	if len(g.ILF) > 0 {
		s.MeanILF = stat.Mean(g.ILF, nil)
		s.StdDevILF = stat.StdDev(g.ILF, nil)
	}
	return s
}

// Write renders the summary as a short, line-oriented report.
func (s Summary) Write(w io.Writer) error {
	_, err := fmt.Fprintf(w,
		"nodes:   %d\nedges:   %d\nregions: %d\ndegree:  mean %.3f, stddev %.3f, max %.0f\nilf:     mean %.3f, stddev %.3f\n",
		s.Nodes, s.Edges, s.Regions,
		s.MeanDegree, s.StdDevDegree, s.MaxDegree,
		s.MeanILF, s.StdDevILF)
	return err
}
