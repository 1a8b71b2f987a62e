package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoskan/graphrat/maze"
	"github.com/avoskan/graphrat/rats"
)

func newRatsCmd() *cobra.Command {
	var (
		graphFile string
		modeName  string
		load      int
		seed      int64
		output    string
	)
	cmd := &cobra.Command{
		Use:   "rats",
		Short: "Generate initial rat placements for a graph",
		Long: `Read a graph file and produce nodeCount×load initial rat positions
under a placement policy: uniform, diagonal, center, or random.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode, err := rats.ParseMode(modeName)
			if err != nil {
				return err
			}
			gf, err := os.Open(graphFile)
			if err != nil {
				return err
			}
			g, err := maze.Load(gf)
			gf.Close()
			if err != nil {
				return err
			}
			return withOutput(cmd, output, func(w io.Writer) error {
				return rats.Store(w, g, mode, load, seed, provenance())
			})
		},
	}
	cmd.Flags().StringVarP(&graphFile, "graph", "G", "", "Graph file (required)")
	cmd.Flags().StringVarP(&modeName, "mode", "m", "uniform", "Placement mode: uniform, diagonal, center, random")
	cmd.Flags().IntVarP(&load, "load", "l", 1, "Load multiplier: rats per node")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 418, "Random seed")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	cmd.MarkFlagRequired("graph")
	return cmd
}
