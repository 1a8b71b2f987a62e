package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/avoskan/graphrat/fractal"
)

func newTreeCmd() *cobra.Command {
	var (
		width, height int
		leaves        int
		seed          int64
		hilbert       bool
		uniform       string
		areaExp       float64
		distExp       float64
		ascii         bool
		output        string
	)
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Generate a spatial partition tree",
		Long: `Generate a partition tree by weighted random subdivision (default),
Hilbert-curve subdivision (--hilbert), or a deterministic uniform grid
(--uniform X:Y), and write it in the tree text format.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				tree *fractal.Tree
				err  error
			)
			if uniform != "" {
				xc, yc, perr := parseUniform(uniform)
				if perr != nil {
					return perr
				}
				tree, err = fractal.Uniform(width, height, xc, yc)
			} else {
				tree, err = fractal.Grow(width, height, leaves, seed, fractal.GrowOptions{
					AreaExponent:     areaExp,
					DistanceExponent: distExp,
					Hilbert:          hilbert,
				})
			}
			if err != nil {
				return err
			}
			return withOutput(cmd, output, func(w io.Writer) error {
				if ascii {
					return tree.RenderASCII(w)
				}
				return tree.Store(w, provenance())
			})
		},
	}
	cmd.Flags().IntVarP(&width, "width", "W", 36, "Width of the grid")
	cmd.Flags().IntVarP(&height, "height", "H", 36, "Height of the grid")
	cmd.Flags().IntVarP(&leaves, "leaves", "n", 20, "Minimum number of leaf regions")
	cmd.Flags().Int64VarP(&seed, "seed", "s", 418, "Random seed")
	cmd.Flags().BoolVarP(&hilbert, "hilbert", "X", false, "Use Hilbert-curve subdivision")
	cmd.Flags().StringVarP(&uniform, "uniform", "u", "", "Uniform grid of X:Y regions instead of random growth")
	cmd.Flags().Float64VarP(&areaExp, "area-exp", "e", 0, "Area exponent of the split-selection weight")
	cmd.Flags().Float64VarP(&distExp, "dist-exp", "d", 0, "Distance exponent of the split-selection weight")
	cmd.Flags().BoolVarP(&ascii, "grid", "g", false, "Write an ASCII grid diagram instead of the tree file")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// parseUniform parses "X:Y" (or the shorthand "X" for a square grid).
func parseUniform(s string) (x, y int, err error) {
	parts := strings.SplitN(s, ":", 2)
	if x, err = strconv.Atoi(parts[0]); err != nil {
		return 0, 0, fmt.Errorf("invalid uniform grid %q", s)
	}
	y = x
	if len(parts) == 2 {
		if y, err = strconv.Atoi(parts[1]); err != nil {
			return 0, 0, fmt.Errorf("invalid uniform grid %q", s)
		}
	}
	return x, y, nil
}
