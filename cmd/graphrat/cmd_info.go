package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/avoskan/graphrat/maze"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info GRAPH",
		Short: "Summarize a graph file",
		Long:  `Load a graph file and report node, edge, degree, and load factor statistics.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			g, err := maze.Load(f)
			f.Close()
			if err != nil {
				return err
			}
			return g.Summarize().Write(cmd.OutOrStdout())
		},
	}
}
