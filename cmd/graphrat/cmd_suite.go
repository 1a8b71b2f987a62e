package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/avoskan/graphrat/workload"
)

func newSuiteCmd() *cobra.Command {
	var (
		file   string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "suite",
		Short: "Run a YAML workload suite",
		Long: `Read a YAML suite description and generate every workload in it:
tree, graph, optional SVG, and rat placement files per entry.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := workload.LoadFile(file)
			if err != nil {
				return err
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return err
			}
			if err := s.Run(outDir); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "generated %d workloads into %s\n", len(s.Workloads), outDir)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "Suite YAML file (required)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Output directory")
	cmd.MarkFlagRequired("file")
	return cmd
}
