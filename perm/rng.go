package perm

import (
	"fmt"
	"math/rand"
)

// DefaultSeed replaces a zero seed in NewRand.
const DefaultSeed int64 = 1

// NewRand returns a deterministic source for column orders. Seed 0 maps to
// DefaultSeed so that an unset seed still reproduces. The result is not safe
// for concurrent use.
func NewRand(seed int64) *rand.Rand {
	if seed == 0 {
		seed = DefaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// RandomPivots overwrites p with a uniformly random pivot sequence:
// p[i] = i + U[0, n-i) for i < n-1, and p[n-1] = n-1.
// Composing it with ApplyPivotsTransposed from the identity gives a uniform
// random explicit permutation. rng==nil uses NewRand(0).
//
// Complexity: O(n).
func RandomPivots(p []int, rng *rand.Rand) {
	n := len(p)
	if n == 0 {
		return
	}
	if rng == nil {
		rng = NewRand(0)
	}
	var i int
	for i = 0; i <= n-2; i++ {
		p[i] = i + rng.Intn(n-i)
	}
	p[n-1] = n - 1
}

// RandomOrder draws a fresh pivot sequence into pivots and writes the
// explicit column order it encodes into q. Both slices must have the same
// length; neither is reallocated.
//
// Errors: ErrLengthMismatch.
//
// Complexity: O(n).
func RandomOrder(q, pivots []int, rng *rand.Rand) error {
	if len(q) != len(pivots) {
		return fmt.Errorf("RandomOrder: len(q)=%d, len(pivots)=%d: %w", len(q), len(pivots), ErrLengthMismatch)
	}
	RandomPivots(pivots, rng)
	SetIdentity(q)

	return ApplyPivotsTransposed(q, pivots, 0)
}
