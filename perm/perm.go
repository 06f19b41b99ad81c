package perm

import "fmt"

// Identity returns the explicit identity permutation of length n.
// For n <= 0 it returns an empty slice.
//
// Complexity: O(n).
func Identity(n int) []int {
	if n <= 0 {
		return []int{}
	}
	p := make([]int, n)
	SetIdentity(p)

	return p
}

// SetIdentity overwrites p with the identity permutation in place.
func SetIdentity(p []int) {
	var i int
	for i = range p {
		p[i] = i
	}
}

// Validate reports whether p is a bijection on {0..len(p)-1}.
// Returns ErrNotPermutation (wrapped with the offending position) otherwise.
//
// Complexity: O(n) time, O(n) space.
func Validate(p []int) error {
	var (
		n    = len(p)
		seen = make([]bool, n)
		i, v int
	)
	for i, v = range p {
		if v < 0 || v >= n || seen[v] {
			return fmt.Errorf("Validate: p[%d]=%d: %w", i, v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// Inverse returns q with q[p[i]] = i.
// Returns ErrNotPermutation if p is not a bijection.
//
// Complexity: O(n).
func Inverse(p []int) ([]int, error) {
	if err := Validate(p); err != nil {
		return nil, err
	}
	q := make([]int, len(p))
	var i int
	for i = range p {
		q[p[i]] = i
	}

	return q, nil
}

// checkPivots verifies the LAPACK contract pivots[i] in [i, n).
func checkPivots(q, pivots []int, start int) error {
	if len(q) != len(pivots) {
		return fmt.Errorf("pivots len=%d, perm len=%d: %w", len(pivots), len(q), ErrLengthMismatch)
	}
	var i int
	for i = start; i < len(pivots); i++ {
		if pivots[i] < i || pivots[i] >= len(pivots) {
			return fmt.Errorf("pivots[%d]=%d: %w", i, pivots[i], ErrInvalidPivot)
		}
	}

	return nil
}

// ApplyPivots applies the pivot sequence to q in place, forward order from start:
// for i = start..n-1, swap q[i] and q[pivots[i]].
//
// Starting from the identity this yields the explicit permutation that
// corresponds to performing the pivot swaps in order.
//
// Errors: ErrLengthMismatch, ErrInvalidPivot.
// Complexity: O(n).
func ApplyPivots(q, pivots []int, start int) error {
	if err := checkPivots(q, pivots, start); err != nil {
		return fmt.Errorf("ApplyPivots: %w", err)
	}
	var i int
	for i = start; i < len(q); i++ {
		q[i], q[pivots[i]] = q[pivots[i]], q[i]
	}

	return nil
}

// ApplyPivotsTransposed applies the pivot sequence to q in place in mirrored
// order: for i = start..n-1, with k = n-1-i, swap q[k] and q[pivots[k]].
// It is the inverse of ApplyPivots when both start at 0.
//
// Errors: ErrLengthMismatch, ErrInvalidPivot.
// Complexity: O(n).
func ApplyPivotsTransposed(q, pivots []int, start int) error {
	if err := checkPivots(q, pivots, 0); err != nil {
		return fmt.Errorf("ApplyPivotsTransposed: %w", err)
	}
	var (
		n    = len(q)
		i, k int
	)
	for i = start; i < n; i++ {
		k = n - i - 1
		q[k], q[pivots[k]] = q[pivots[k]], q[k]
	}

	return nil
}
