package fractal

import (
	"fmt"

	"github.com/avoskan/graphrat/randutil"
)

// branchFactors are the admissible split degrees for plain fractal
// branching; a leaf can only split a dimension one of these divides.
var branchFactors = []int{2, 3}

// Basic returns a single-node tree spanning width×height.
func Basic(width, height int) (*Tree, error) {
	if width < 1 || height < 1 {
		return nil, fmt.Errorf("fractal: Basic(%d, %d): %w", width, height, ErrBadDimension)
	}
	t := newTree(randutil.DefaultSeed)
	t.newNode(Rect{Width: width, Height: height})
	t.finish()
	return t, nil
}

// Grow builds a partition tree by weighted random subdivision. Starting
// from the root, leaves are drawn with probability proportional to their
// growth weight and split until targetLeaves leaves exist. A leaf whose
// branch attempt fails is permanently excluded from the candidate set;
// if the set empties first, Grow returns ErrExhausted and no tree.
//
// Determinism: identical arguments reproduce the identical tree.
// Complexity: O(leaves²) from the per-split weight rescan; a priority
// structure would reorder the RNG stream.
func Grow(width, height, targetLeaves int, seed int64, opts GrowOptions) (*Tree, error) {
	if width < 1 || height < 1 || targetLeaves < 1 {
		return nil, fmt.Errorf("fractal: Grow(%d, %d, target=%d): %w",
			width, height, targetLeaves, ErrBadDimension)
	}
	t := newTree(seed)
	t.areaExponent = opts.AreaExponent
	t.distanceExponent = opts.DistanceExponent
	rng := randutil.New(seed)

	root := t.newNode(Rect{Width: width, Height: height})
	candidates := []*Node{root}
	for len(candidates) > 0 && len(candidates) < targetLeaves {
		weights := make([]float64, len(candidates))
		for i, n := range candidates {
			weights[i] = n.weight(opts.AreaExponent, opts.DistanceExponent)
		}
		idx, err := rng.WeightedIndex(weights)
		if err != nil {
			return nil, fmt.Errorf("fractal: Grow leaf selection: %w", err)
		}
		n := candidates[idx]
		// Straightforward O(n) removal; the draw order is part of the
		// reproducibility contract.
		candidates = append(candidates[:idx], candidates[idx+1:]...)

		var ok bool
		if opts.Hilbert {
			ok = t.branchHilbert(rng, n)
		} else {
			ok = t.branchFractal(rng, n)
		}
		if ok {
			for _, id := range n.Children {
				candidates = append(candidates, t.nodes[id])
			}
		}
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("fractal: Grow(%d, %d, target=%d, seed=%d): %w",
			width, height, targetLeaves, seed, ErrExhausted)
	}
	t.finish()
	return t, nil
}

// branchFractal attempts to split n into 2 or 3 equal children. The split
// axis never repeats the parent's axis; the root may use either. Returns
// false, leaving n a leaf, when no branch factor divides the dimension.
//
// Draw order is fixed: one Pick for the axis (always consumed, even when
// the parent constraint leaves a single candidate), then one Pick for the
// degree if any factor fits.
func (t *Tree) branchFractal(rng *randutil.RNG, n *Node) bool {
	axes := []Kind{SplitHorizontal, SplitVertical}
	if p, ok := t.nodes[n.Parent]; ok {
		if p.Kind == SplitVertical {
			axes = []Kind{SplitHorizontal}
		} else {
			axes = []Kind{SplitVertical}
		}
	}
	kind, _ := randutil.Pick(rng, axes)

	dim := n.Height
	if kind == SplitVertical {
		dim = n.Width
	}
	var fits []int
	for _, f := range branchFactors {
		if dim%f == 0 {
			fits = append(fits, f)
		}
	}
	if len(fits) == 0 {
		return false
	}
	degree, _ := randutil.Pick(rng, fits)

	n.Kind = kind
	var w, h, dx, dy int
	if kind == SplitVertical {
		w, h = n.Width/degree, n.Height
		dx, dy = w, 0
	} else {
		w, h = n.Width, n.Height/degree
		dx, dy = 0, h
	}
	for i := 0; i < degree; i++ {
		child := t.newNode(Rect{
			Width:  w,
			Height: h,
			LeftX:  n.LeftX + i*dx,
			UpperY: n.UpperY + i*dy,
		})
		t.addChild(n, child)
	}
	return true
}

// Uniform builds a deterministic xCount×yCount partition of width×height:
// a horizontal split into yCount bands (skipped when yCount is 1), then a
// vertical split of each band into xCount columns. Both counts must
// divide their dimension exactly, else ErrNotDivisible.
func Uniform(width, height, xCount, yCount int) (*Tree, error) {
	if width < 1 || height < 1 || xCount < 1 || yCount < 1 {
		return nil, fmt.Errorf("fractal: Uniform(%d, %d, %d, %d): %w",
			width, height, xCount, yCount, ErrBadDimension)
	}
	if width%xCount != 0 {
		return nil, fmt.Errorf("fractal: width %d not divisible by count %d: %w",
			width, xCount, ErrNotDivisible)
	}
	if height%yCount != 0 {
		return nil, fmt.Errorf("fractal: height %d not divisible by count %d: %w",
			height, yCount, ErrNotDivisible)
	}
	t := newTree(randutil.DefaultSeed)
	t.uniformX, t.uniformY = xCount, yCount
	root := t.newNode(Rect{Width: width, Height: height})
	if yCount == 1 {
		t.splitColumns(root, xCount)
	} else {
		t.splitBands(root, yCount)
		for _, id := range root.Children {
			t.splitColumns(t.nodes[id], xCount)
		}
	}
	t.finish()
	return t, nil
}

// splitBands divides n into count equal horizontal bands.
func (t *Tree) splitBands(n *Node, count int) {
	n.Kind = SplitHorizontal
	h := n.Height / count
	for i := 0; i < count; i++ {
		child := t.newNode(Rect{
			Width:  n.Width,
			Height: h,
			LeftX:  n.LeftX,
			UpperY: n.UpperY + i*h,
		})
		t.addChild(n, child)
	}
}

// splitColumns divides n into count equal columns.
func (t *Tree) splitColumns(n *Node, count int) {
	n.Kind = SplitVertical
	w := n.Width / count
	for i := 0; i < count; i++ {
		child := t.newNode(Rect{
			Width:  w,
			Height: n.Height,
			LeftX:  n.LeftX + i*w,
			UpperY: n.UpperY,
		})
		t.addChild(n, child)
	}
}
