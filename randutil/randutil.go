package randutil

import "errors"

// Reference generator constants. These are fixed by the benchmark's file
// formats: changing any of them changes every generated workload.
const (
	// groupSize is the Mersenne prime 2³¹−1, the LCG modulus.
	groupSize = 2147483647
	// mulSeed scales the previous state on each step.
	mulSeed = 48271
	// mulInput scales the caller-supplied input on each step.
	mulInput = 16807
	// InitSeed is the initial generator state before seeding.
	InitSeed = 418
	// DefaultSeed is the conventional seed for generated workloads.
	DefaultSeed = 418
)

// Sentinel errors for randutil operations.
var (
	// ErrEmptySet indicates a selection from an empty slice.
	ErrEmptySet = errors.New("randutil: selection from empty set")
	// ErrZeroWeight indicates WeightedIndex received no positive weight.
	ErrZeroWeight = errors.New("randutil: weights sum to zero")
)

// RNG is a deterministic pseudo-random source. It is not safe for
// concurrent use; generators are cheap, give each goroutine its own.
type RNG struct {
	state int64
}

// New returns an RNG seeded by folding seeds over InitSeed in order.
// The empty seed list yields the reference initial state.
// Complexity: O(len(seeds)).
func New(seeds ...int64) *RNG {
	r := &RNG{state: InitSeed}
	for _, s := range seeds {
		r.next(s)
	}
	return r
}

// next advances the generator by one step, mixing in input x, and
// returns the new state in [0, groupSize). The input is reduced mod
// groupSize first and the step runs in uint64: a signed product would
// overflow for large-magnitude inputs and leave a negative state.
func (r *RNG) next(x int64) int64 {
	a := x%groupSize + 1
	if a < 0 {
		a += groupSize
	}
	r.state = int64((uint64(a)*mulInput + uint64(r.state)*mulSeed) % groupSize)
	return r.state
}

// Float returns a uniform float64 in [0, span).
func (r *RNG) Float(span float64) float64 {
	return float64(r.next(0)) / float64(groupSize) * span
}

// Int returns a uniform integer in the inclusive range [lo, hi].
// lo > hi is a caller bug; the draw degenerates to lo.
func (r *RNG) Int(lo, hi int) int {
	if hi <= lo {
		r.next(0) // keep the stream position independent of the range
		return lo
	}
	return lo + int(r.Float(float64(hi-lo+1)))
}

// WeightedIndex picks index i with probability weights[i]/Σweights.
// Weights must be non-negative; a zero weight makes its index
// unselectable. Returns ErrZeroWeight when nothing is selectable and
// ErrEmptySet for an empty slice.
// Complexity: O(len(weights)).
func (r *RNG) WeightedIndex(weights []float64) (int, error) {
	if len(weights) == 0 {
		return 0, ErrEmptySet
	}
	var total float64
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total <= 0 {
		return 0, ErrZeroWeight
	}
	draw := r.Float(total)
	last := 0
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if draw < w {
			return i, nil
		}
		draw -= w
		last = i
	}
	// Float rounding can leave a sliver past the final weight.
	return last, nil
}

// Shuffle permutes xs in place with a Fisher–Yates pass.
// Complexity: O(len(xs)).
func Shuffle[T any](r *RNG, xs []T) {
	for i := len(xs) - 1; i > 0; i-- {
		j := r.Int(0, i)
		xs[i], xs[j] = xs[j], xs[i]
	}
}

// Permute returns a shuffled copy of xs, leaving xs untouched.
// Complexity: O(len(xs)).
func Permute[T any](r *RNG, xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	Shuffle(r, out)
	return out
}

// Pick returns a uniform element of xs. Every call consumes exactly one
// draw, singleton slices included, so call sequences stay aligned across
// configurations. Returns ErrEmptySet for an empty slice.
func Pick[T any](r *RNG, xs []T) (T, error) {
	var zero T
	if len(xs) == 0 {
		return zero, ErrEmptySet
	}
	return xs[r.Int(0, len(xs)-1)], nil
}
