package perm

import (
	"fmt"
	"sort"
)

// sortedPivots copies pivots into scratch (growing it if needed), sorts the
// copy and verifies range and uniqueness.
func sortedPivots(n int, pivots, scratch []int) ([]int, error) {
	if len(pivots) > n {
		return nil, fmt.Errorf("rank=%d > n=%d: %w", len(pivots), n, ErrLengthMismatch)
	}
	if cap(scratch) < len(pivots) {
		scratch = make([]int, len(pivots))
	}
	s := scratch[:len(pivots)]
	copy(s, pivots)
	sort.Ints(s)
	var i int
	for i = range s {
		if s[i] < 0 || s[i] >= n {
			return nil, fmt.Errorf("pivot %d not in [0,%d): %w", s[i], n, ErrInvalidPivot)
		}
		if i > 0 && s[i] == s[i-1] {
			return nil, fmt.Errorf("pivot %d: %w", s[i], ErrDuplicatePivot)
		}
	}

	return s, nil
}

// SkipPivots returns the sorted list of columns in {0..n-1} that are not
// listed in pivots, appended to dst[:0]. scratch, if large enough, is used
// to hold the sorted pivots.
//
// Implementation:
//   - Stage 1: sort a copy of the pivots.
//   - Stage 2: emit the gaps between consecutive sorted pivots (linear merge).
//
// Invariant: len(result) + len(pivots) == n, and the two lists partition {0..n-1}.
//
// Errors: ErrLengthMismatch (rank > n), ErrInvalidPivot, ErrDuplicatePivot.
// Complexity: O(r log r + n).
func SkipPivots(n int, pivots, dst, scratch []int) ([]int, error) {
	s, err := sortedPivots(n, pivots, scratch)
	if err != nil {
		return nil, fmt.Errorf("SkipPivots: %w", err)
	}
	out := dst[:0]
	var (
		end  = -1
		i, j int
	)
	for i = range s {
		for j = end + 1; j < s[i]; j++ {
			out = append(out, j)
		}
		end = s[i]
	}
	for j = end + 1; j < n; j++ {
		out = append(out, j)
	}

	return out, nil
}

// SkipPivotsSearch computes the same complement as SkipPivots by testing each
// column against the sorted pivots with a binary search.
//
// Complexity: O(r log r + n log r).
func SkipPivotsSearch(n int, pivots, dst, scratch []int) ([]int, error) {
	s, err := sortedPivots(n, pivots, scratch)
	if err != nil {
		return nil, fmt.Errorf("SkipPivotsSearch: %w", err)
	}
	out := dst[:0]
	var j, k int
	for j = 0; j < n; j++ {
		k = sort.SearchInts(s, j)
		if k < len(s) && s[k] == j {
			continue
		}
		out = append(out, j)
	}

	return out, nil
}
