package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoskan/graphrat/fractal"
	"github.com/avoskan/graphrat/maze"
)

func newGraphCmd() *cobra.Command {
	var (
		treeFile  string
		expansion int
		ilf       string
		seed      int64
		regions   bool
		toSVG     bool
		output    string
	)
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Generate a grid graph from a partition tree",
		Long: `Read a partition tree file and synthesize the grid graph the simulator
runs on: 4-neighbor edges, per-node ideal load factors, and hub shortcuts
inside every region. With --svg, render the graph instead of storing it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := maze.DefaultOptions()
			opts.Expansion = expansion
			opts.Seed = seed
			opts.Regions = regions
			if ilf != "" {
				low, high, err := parseILF(ilf)
				if err != nil {
					return err
				}
				opts.ILFLow, opts.ILFHigh = low, high
			}

			tf, err := os.Open(treeFile)
			if err != nil {
				return err
			}
			tree, err := fractal.Load(tf)
			tf.Close()
			if err != nil {
				return err
			}

			g, err := maze.Generate(tree, opts)
			if err != nil {
				return err
			}
			g.Comments = append([]string{provenance()}, g.Comments...)
			return withOutput(cmd, output, func(w io.Writer) error {
				if toSVG {
					g.RenderSVG(w, maze.DefaultGridSpacing)
					return nil
				}
				return g.Store(w)
			})
		},
	}
	cmd.Flags().StringVarP(&treeFile, "tree", "t", "", "Partition tree file (required)")
	cmd.Flags().IntVarP(&expansion, "expansion", "E", 1, "Expansion factor from tree regions to grid regions")
	cmd.Flags().StringVarP(&ilf, "ilf", "l", "", "Ideal load factor range as LOW:HIGH (default 1.2:1.8)")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 418, "Random seed")
	cmd.Flags().BoolVarP(&regions, "regions", "r", false, "Include region records in the graph file")
	cmd.Flags().BoolVarP(&toSVG, "svg", "S", false, "Render an SVG drawing instead of the graph file")
	cmd.MarkFlagRequired("tree")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// parseILF parses "LOW:HIGH".
func parseILF(s string) (low, high float64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("ideal load factor range must be LOW:HIGH, got %q", s)
	}
	if low, err = strconv.ParseFloat(parts[0], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid load factor range %q", s)
	}
	if high, err = strconv.ParseFloat(parts[1], 64); err != nil {
		return 0, 0, fmt.Errorf("invalid load factor range %q", s)
	}
	return low, high, nil
}
