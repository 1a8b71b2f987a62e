package randutil_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/avoskan/graphrat/randutil"
)

// TestDeterminism verifies that equal seeds reproduce the exact stream
// and that different seeds diverge.
func TestDeterminism(t *testing.T) {
	a := randutil.New(418)
	b := randutil.New(418)
	c := randutil.New(419)
	same, diverged := true, false
	for i := 0; i < 1000; i++ {
		va, vb, vc := a.Int(0, 1<<20), b.Int(0, 1<<20), c.Int(0, 1<<20)
		same = same && va == vb
		diverged = diverged || va != vc
	}
	require.True(t, same, "equal seeds must yield identical streams")
	require.True(t, diverged, "different seeds must diverge")
}

// TestIntRange checks inclusive bounds and the degenerate range.
func TestIntRange(t *testing.T) {
	r := randutil.New(7)
	seenLo, seenHi := false, false
	for i := 0; i < 5000; i++ {
		v := r.Int(3, 8)
		require.GreaterOrEqual(t, v, 3)
		require.LessOrEqual(t, v, 8)
		seenLo = seenLo || v == 3
		seenHi = seenHi || v == 8
	}
	require.True(t, seenLo, "lower bound never drawn")
	require.True(t, seenHi, "upper bound never drawn")
	require.Equal(t, 5, r.Int(5, 5))
}

// TestExtremeSeeds verifies the state stays in range for seeds near the
// int64 limits. A signed LCG step overflows on such seeds and turns the
// whole stream negative.
func TestExtremeSeeds(t *testing.T) {
	seeds := []int64{1 << 62, -(1 << 62), math.MaxInt64, math.MinInt64, -5}
	for _, seed := range seeds {
		r := randutil.New(seed)
		for i := 0; i < 1000; i++ {
			v := r.Int(0, 15)
			require.GreaterOrEqual(t, v, 0, "seed %d draw %d", seed, i)
			require.LessOrEqual(t, v, 15, "seed %d draw %d", seed, i)
		}
		f := r.Float(1)
		require.GreaterOrEqual(t, f, 0.0, "seed %d", seed)
		require.Less(t, f, 1.0, "seed %d", seed)
		idx, err := r.WeightedIndex([]float64{1, 1, 1})
		require.NoError(t, err)
		require.GreaterOrEqual(t, idx, 0, "seed %d", seed)
	}
}

// TestFloatRange checks the half-open interval.
func TestFloatRange(t *testing.T) {
	r := randutil.New(11)
	for i := 0; i < 5000; i++ {
		v := r.Float(2.5)
		require.GreaterOrEqual(t, v, 0.0)
		require.Less(t, v, 2.5)
	}
}

// TestWeightedIndex verifies proportional selection, skipping of zero
// weights, and the error cases.
func TestWeightedIndex(t *testing.T) {
	r := randutil.New(418)
	counts := make([]int, 3)
	weights := []float64{1, 0, 3}
	for i := 0; i < 8000; i++ {
		idx, err := r.WeightedIndex(weights)
		require.NoError(t, err)
		counts[idx]++
	}
	require.Zero(t, counts[1], "zero weight must be unselectable")
	// counts[2] ≈ 3×counts[0]; allow generous slack.
	require.Greater(t, counts[2], 2*counts[0])

	_, err := r.WeightedIndex(nil)
	require.ErrorIs(t, err, randutil.ErrEmptySet)
	_, err = r.WeightedIndex([]float64{0, 0})
	require.ErrorIs(t, err, randutil.ErrZeroWeight)
}

// TestShuffle verifies the result is a permutation and that Permute
// leaves its input untouched.
func TestShuffle(t *testing.T) {
	r := randutil.New(1)
	in := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	out := randutil.Permute(r, in)
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, in)
	require.ElementsMatch(t, in, out)
}

// TestPickConsumesOneDraw pins the contract that every Pick advances the
// stream exactly once, even on singleton sets, so call sequences stay
// aligned across configurations.
func TestPickConsumesOneDraw(t *testing.T) {
	a := randutil.New(418)
	b := randutil.New(418)
	_, err := randutil.Pick(a, []string{"only"})
	require.NoError(t, err)
	b.Int(0, 0) // one draw
	require.Equal(t, a.Int(0, 100), b.Int(0, 100))

	_, err = randutil.Pick(a, []string{})
	require.True(t, errors.Is(err, randutil.ErrEmptySet))
}
