package gf2

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
)

// GaussOne performs one step of Gauss-Jordan elimination on column col,
// searching for a pivot in rows begRow..r-1. When a row with a one in col is
// found it is swapped into begRow and added to every other row that has a
// one in col, so that column col becomes the unit vector e_begRow.
//
// Returns true when a pivot was found (the caller then increments its rank).
// Rows above begRow are cleared too, which keeps the matrix in reduced row
// echelon form with respect to all pivots processed so far.
//
// No bounds checks: 0 <= col < Cols and 0 <= begRow <= Rows.
// Complexity: O(r*c/64).
func (m *Dense) GaussOne(col, begRow int) bool {
	var (
		c    = uint(col)
		i, j int
	)
	for j = begRow; j < m.r; j++ {
		if !m.rows[j].Test(c) {
			continue
		}
		m.SwapRows(begRow, j)
		for i = 0; i < m.r; i++ {
			if i != begRow && m.rows[i].Test(c) {
				m.rows[i].InPlaceSymmetricDifference(m.rows[begRow])
			}
		}

		return true
	}

	return false
}

// EchelonizeOrder reduces m in place to reduced row echelon form, visiting
// columns in the given order. The pivot column of each pivot row is appended
// to pivots[:0] in row order; len(result) is the rank.
//
// order == nil visits columns 0..c-1.
//
// Errors: ErrOutOfRange (column in order outside [0,c)).
// Complexity: O(len(order) * r * c/64).
func (m *Dense) EchelonizeOrder(order, pivots []int) ([]int, error) {
	out := pivots[:0]
	var (
		rank, i, col int
		n            = m.c
	)
	if order != nil {
		n = len(order)
	}
	for i = 0; i < n && rank < m.r; i++ {
		col = i
		if order != nil {
			col = order[i]
		}
		if col < 0 || col >= m.c {
			return nil, fmt.Errorf("EchelonizeOrder: column %d: %w", col, ErrOutOfRange)
		}
		if m.GaussOne(col, rank) {
			out = append(out, col)
			rank++
		}
	}

	return out, nil
}

// Echelonize reduces m in place (natural column order) and returns the pivot
// columns, one per pivot row.
func (m *Dense) Echelonize() []int {
	pivots, _ := m.EchelonizeOrder(nil, nil) // natural order is always in range

	return pivots
}

// Rank returns rank(m) without modifying m.
// Complexity: O(r*c*min(r,c)/64).
func (m *Dense) Rank() int {
	return len(m.Clone().Echelonize())
}

// Reducer maintains an echelon basis of a growing subspace of GF(2)^n.
// Each accepted vector has zeros at the pivot positions of all earlier basis
// vectors, so a single pass in insertion order reduces any vector to its
// canonical remainder.
type Reducer struct {
	n      int
	basis  []*bitset.BitSet
	pivots []int
}

// NewReducer returns an empty basis over vectors of length n.
func NewReducer(n int) *Reducer {
	return &Reducer{n: n}
}

// Rank is the dimension of the spanned subspace.
func (r *Reducer) Rank() int { return len(r.basis) }

// Reduce replaces v by its remainder modulo the spanned subspace and reports
// whether the remainder is nonzero (v not in span).
// Complexity: O(rank * n/64).
func (r *Reducer) Reduce(v *bitset.BitSet) bool {
	var k int
	for k = range r.basis {
		if v.Test(uint(r.pivots[k])) {
			v.InPlaceSymmetricDifference(r.basis[k])
		}
	}

	return v.Any()
}

// Add reduces v in place and, if the remainder is nonzero, takes ownership of
// v as a new basis vector (pivot = lowest set bit). Returns true when the
// rank grew.
func (r *Reducer) Add(v *bitset.BitSet) bool {
	if !r.Reduce(v) {
		return false
	}
	p, _ := v.NextSet(0)
	r.basis = append(r.basis, v)
	r.pivots = append(r.pivots, int(p))

	return true
}
