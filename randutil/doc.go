// Package randutil provides the seeded pseudo-random source used by every
// graphrat generator.
//
// What:
//
//   - RNG — a Lehmer-style linear congruential generator over the
//     multiplicative group mod 2³¹−1, seeded from an explicit seed list.
//   - Uniform draws: Int (inclusive range), Float ([0, span)).
//   - Weighted selection: WeightedIndex over non-negative weights.
//   - Collections: Pick (uniform element), Permute (shuffled copy),
//     Shuffle (in-place Fisher–Yates).
//
// Why:
//
//   - Determinism is the load-bearing guarantee of the whole module:
//     the same seed and the same call sequence must reproduce identical
//     output across runs, processes, and machines. math/rand makes no
//     such cross-version promise, so the generator is pinned here with
//     fixed reference constants.
//   - No globals: every generation request owns its RNG instance, so
//     repeated or interleaved generations never interfere.
//
// Complexity:
//
//   - Int, Float, Pick: O(1).
//   - WeightedIndex: O(len(weights)).
//   - Permute, Shuffle: O(n).
//
// Errors:
//
//   - ErrEmptySet: selection from an empty slice.
//   - ErrZeroWeight: all weights zero (or negative) in WeightedIndex.
package randutil
