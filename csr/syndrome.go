package csr

import "fmt"

// oddOverlap reports whether the sorted lists a and b share an odd number of
// elements (two-pointer merge).
func oddOverlap(a, b []int) bool {
	var (
		i, j int
		odd  bool
	)
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			odd = !odd
			i++
			j++
		}
	}

	return odd
}

// SyndromeNonZero reports whether some row of m has an odd overlap with the
// sorted support, i.e. whether m·v != 0 for the vector v with that support.
// It stops at the first odd row.
//
// For a logical-operator matrix this is the nontriviality test of a
// candidate codeword.
// Complexity: O(nnz + rows*len(support)) worst case.
func (m *Matrix) SyndromeNonZero(support []int) bool {
	var i int
	for i = 0; i < m.rows; i++ {
		if oddOverlap(m.Row(i), support) {
			return true
		}
	}

	return false
}

// Syndrome appends to dst[:0] the indices of the rows of m with odd overlap
// with the sorted support.
func (m *Matrix) Syndrome(support, dst []int) []int {
	out := dst[:0]
	var i int
	for i = 0; i < m.rows; i++ {
		if oddOverlap(m.Row(i), support) {
			out = append(out, i)
		}
	}

	return out
}

// ProductNonZero reports whether a·bᵀ has a nonzero entry, i.e. some row of
// a and some row of b overlap oddly. Used to verify H·Gᵀ = 0.
//
// Errors: ErrDimensionMismatch when the column counts differ.
// Complexity: O(a.rows * (b.nnz + b.rows*w_a)).
func ProductNonZero(a, b *Matrix) (bool, error) {
	if a.cols != b.cols {
		return false, fmt.Errorf("ProductNonZero: cols %d vs %d: %w", a.cols, b.cols, ErrDimensionMismatch)
	}
	var i int
	for i = 0; i < a.rows; i++ {
		if b.SyndromeNonZero(a.Row(i)) {
			return true, nil
		}
	}

	return false, nil
}
