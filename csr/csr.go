// SPDX-License-Identifier: MIT

// Package csr - compressed sparse row storage for binary matrices.
//
// Layout:
//   - ptr has rows+1 entries; row i occupies idx[ptr[i]:ptr[i+1]].
//   - every row is strictly increasing (no duplicates, sorted).
//
// A Matrix is read-only after construction. Transpose and
// ApplyColumnPermutation return new values.

package csr

import (
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/qdist/gf2"
	"github.com/katalvlaran/qdist/perm"
)

// Pair is one nonzero entry in coordinate form.
type Pair struct {
	Row, Col int
}

// Matrix is a binary sparse matrix in compressed row form.
type Matrix struct {
	rows, cols int
	ptr        []int
	idx        []int
}

var _ fmt.Stringer = (*Matrix)(nil)

// New returns an empty rows×cols matrix.
func New(rows, cols int) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("csr.New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}

	return &Matrix{rows: rows, cols: cols, ptr: make([]int, rows+1)}, nil
}

// FromPairs compresses a list of (row, col) entries. Entries are bucketed by
// row and sorted; an entry listed an even number of times cancels (GF(2)
// addition), an odd number of times yields a single one.
//
// Errors: ErrInvalidDimensions, ErrOutOfRange.
// Complexity: O(nnz log nnz).
func FromPairs(rows, cols int, pairs []Pair) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	var (
		i, k int
		p    Pair
	)
	for _, p = range pairs {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return nil, fmt.Errorf("FromPairs: entry (%d,%d) in %dx%d: %w", p.Row, p.Col, rows, cols, ErrOutOfRange)
		}
		m.ptr[p.Row+1]++
	}
	for i = 0; i < rows; i++ {
		m.ptr[i+1] += m.ptr[i]
	}
	raw := make([]int, len(pairs))
	fill := slices.Clone(m.ptr[:rows])
	for _, p = range pairs {
		raw[fill[p.Row]] = p.Col
		fill[p.Row]++
	}

	// sort each row and cancel duplicates, compacting in place
	var beg, end, w int
	for i = 0; i < rows; i++ {
		beg, end = m.ptr[i], m.ptr[i+1]
		row := raw[beg:end]
		slices.Sort(row)
		m.ptr[i] = w
		for k = 0; k < len(row); {
			j := k + 1
			for j < len(row) && row[j] == row[k] {
				j++
			}
			if (j-k)%2 == 1 {
				raw[w] = row[k]
				w++
			}
			k = j
		}
	}
	m.ptr[rows] = w
	m.idx = raw[:w]

	return m, nil
}

// FromRows builds a matrix from per-row column supports (any order,
// duplicates cancel).
func FromRows(cols int, rows [][]int) (*Matrix, error) {
	var (
		pairs []Pair
		i, c  int
	)
	for i = range rows {
		for _, c = range rows[i] {
			pairs = append(pairs, Pair{Row: i, Col: c})
		}
	}

	return FromPairs(len(rows), cols, pairs)
}

// Rows returns the row count.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Matrix) Cols() int { return m.cols }

// NNZ returns the number of nonzero entries.
func (m *Matrix) NNZ() int { return m.ptr[m.rows] }

// Row returns the sorted column indices of row i. The slice aliases the
// matrix and must not be modified.
func (m *Matrix) Row(i int) []int { return m.idx[m.ptr[i]:m.ptr[i+1]] }

// RowWeight returns the number of ones in row i.
func (m *Matrix) RowWeight(i int) int { return m.ptr[i+1] - m.ptr[i] }

// MaxRowWeight returns the largest row weight (0 for an empty matrix).
func (m *Matrix) MaxRowWeight() int {
	var w, i int
	for i = 0; i < m.rows; i++ {
		w = max(w, m.RowWeight(i))
	}

	return w
}

// Pairs returns all entries in row-major order.
func (m *Matrix) Pairs() []Pair {
	out := make([]Pair, 0, m.NNZ())
	var i, c int
	for i = 0; i < m.rows; i++ {
		for _, c = range m.Row(i) {
			out = append(out, Pair{Row: i, Col: c})
		}
	}

	return out
}

// Transpose returns a new cols×rows matrix.
// Rows of the result are produced in increasing order without sorting.
// Complexity: O(nnz + rows + cols).
func (m *Matrix) Transpose() *Matrix {
	t := &Matrix{rows: m.cols, cols: m.rows, ptr: make([]int, m.cols+1), idx: make([]int, m.NNZ())}
	var i, c int
	for _, c = range m.idx {
		t.ptr[c+1]++
	}
	for i = 0; i < m.cols; i++ {
		t.ptr[i+1] += t.ptr[i]
	}
	fill := slices.Clone(t.ptr[:m.cols])
	for i = 0; i < m.rows; i++ {
		for _, c = range m.Row(i) {
			t.idx[fill[c]] = i
			fill[c]++
		}
	}

	return t
}

// ApplyColumnPermutation returns a copy of m whose entry (i, j) moves to
// (i, p[j]). p must be an explicit permutation of length Cols.
//
// Errors: ErrDimensionMismatch, perm.ErrNotPermutation.
// Complexity: O(nnz log w).
func (m *Matrix) ApplyColumnPermutation(p []int) (*Matrix, error) {
	if len(p) != m.cols {
		return nil, fmt.Errorf("ApplyColumnPermutation: len(p)=%d, cols=%d: %w", len(p), m.cols, ErrDimensionMismatch)
	}
	if err := perm.Validate(p); err != nil {
		return nil, fmt.Errorf("ApplyColumnPermutation: %w", err)
	}
	out := &Matrix{rows: m.rows, cols: m.cols, ptr: slices.Clone(m.ptr), idx: make([]int, len(m.idx))}
	var i, k int
	for i = 0; i < m.rows; i++ {
		for k = m.ptr[i]; k < m.ptr[i+1]; k++ {
			out.idx[k] = p[m.idx[k]]
		}
		slices.Sort(out.idx[m.ptr[i]:m.ptr[i+1]])
	}

	return out, nil
}

// ToDense converts m into a bit-packed dense matrix.
func (m *Matrix) ToDense() *gf2.Dense {
	d, _ := gf2.NewDense(m.rows, m.cols) // shape already validated
	var i, c int
	for i = 0; i < m.rows; i++ {
		row := d.Row(i)
		for _, c = range m.Row(i) {
			row.Set(uint(c))
		}
	}

	return d
}

// FromDense converts a dense matrix into compressed row form.
// Complexity: O(rows*cols/64 + nnz).
func FromDense(d *gf2.Dense) *Matrix {
	m := &Matrix{rows: d.Rows(), cols: d.Cols(), ptr: make([]int, d.Rows()+1)}
	var i int
	for i = 0; i < d.Rows(); i++ {
		m.idx = append(m.idx, d.RowSupport(i, nil)...)
		m.ptr[i+1] = len(m.idx)
	}

	return m
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Matrix) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows && a.cols == b.cols &&
		slices.Equal(a.ptr, b.ptr) && slices.Equal(a.idx, b.idx)
}

// String prints the header line followed by one line per row with 1-based
// column indices.
func (m *Matrix) String() string {
	var (
		sb   strings.Builder
		i, c int
	)
	fmt.Fprintf(&sb, "# binary CSR matrix (%d x %d), nz=%d\n", m.rows, m.cols, m.NNZ())
	for i = 0; i < m.rows; i++ {
		fmt.Fprintf(&sb, "%d:", i+1)
		for _, c = range m.Row(i) {
			fmt.Fprintf(&sb, " %d", c+1)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
