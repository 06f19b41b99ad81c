// SPDX-License-Identifier: MIT

// Package gf2 - Dense bit-packed storage & accessors.
//
// Purpose:
//   - One *bitset.BitSet per row: XOR of two rows is a word-parallel
//     symmetric difference, the only row operation GF(2) elimination needs.
//   - Safe accessors (At/Set) return ErrOutOfRange; the hot-path helpers
//     (Row, XorRow, SwapRows, Test) skip bounds checks.
//
// Complexity quicksheet:
//   - NewDense: O(r*c/64); At/Set: O(1); XorRow: O(c/64); SwapRows: O(1);
//     Clone/Transpose: O(r*c/64) and O(nnz + r*c/64).

package gf2

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

const (
	ctxAt  = "At"
	ctxSet = "Set"
)

func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a row-major binary matrix.
//   - r,c hold dimensions; zero is allowed on either axis.
//   - rows[i] has length c; bits beyond c are never set.
type Dense struct {
	r, c int
	rows []*bitset.BitSet
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDense creates an r×c zero matrix.
//
// Errors: ErrInvalidDimensions when rows<0 or cols<0.
// Complexity: O(r*c/64).
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("NewDense(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	m := &Dense{r: rows, c: cols, rows: make([]*bitset.BitSet, rows)}
	var i int
	for i = range m.rows {
		m.rows[i] = bitset.New(uint(cols))
	}

	return m, nil
}

// FromSupports builds an r×cols matrix whose row i has ones exactly at the
// column indices listed in supports[i]. A column listed twice cancels.
//
// Errors: ErrInvalidDimensions, ErrOutOfRange (column outside [0,cols)).
// Complexity: O(r*c/64 + nnz).
func FromSupports(cols int, supports [][]int) (*Dense, error) {
	m, err := NewDense(len(supports), cols)
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		row  []int
	)
	for i, row = range supports {
		for _, j = range row {
			if j < 0 || j >= cols {
				return nil, fmt.Errorf("FromSupports: %w", denseErrorf(ctxSet, i, j, ErrOutOfRange))
			}
			m.rows[i].Flip(uint(j))
		}
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.c }

func (m *Dense) inRange(row, col int) bool {
	return row >= 0 && row < m.r && col >= 0 && col < m.c
}

// At returns the bit at (row, col) or ErrOutOfRange.
func (m *Dense) At(row, col int) (bool, error) {
	if !m.inRange(row, col) {
		return false, denseErrorf(ctxAt, row, col, ErrOutOfRange)
	}

	return m.rows[row].Test(uint(col)), nil
}

// Set assigns the bit at (row, col) or returns ErrOutOfRange.
func (m *Dense) Set(row, col int, v bool) error {
	if !m.inRange(row, col) {
		return denseErrorf(ctxSet, row, col, ErrOutOfRange)
	}
	m.rows[row].SetTo(uint(col), v)

	return nil
}

// Test is the unchecked form of At for hot loops.
func (m *Dense) Test(row, col int) bool { return m.rows[row].Test(uint(col)) }

// Row exposes row i as a bitset. The returned value aliases the matrix.
func (m *Dense) Row(i int) *bitset.BitSet { return m.rows[i] }

// RowSupport appends the sorted column indices of row i to dst[:0].
func (m *Dense) RowSupport(i int, dst []int) []int { return Support(m.rows[i], dst) }

// Support appends the indices of the set bits of b, in increasing order, to dst[:0].
func Support(b *bitset.BitSet, dst []int) []int {
	out := dst[:0]
	var (
		j  uint
		ok bool
	)
	for j, ok = b.NextSet(0); ok; j, ok = b.NextSet(j + 1) {
		out = append(out, int(j))
	}

	return out
}

// RowWeight returns the number of ones in row i.
func (m *Dense) RowWeight(i int) int { return int(m.rows[i].Count()) }

// SwapRows exchanges rows a and b (pointer swap).
func (m *Dense) SwapRows(a, b int) { m.rows[a], m.rows[b] = m.rows[b], m.rows[a] }

// XorRow adds row src into row dst over GF(2): dst ^= src.
func (m *Dense) XorRow(dst, src int) { m.rows[dst].InPlaceSymmetricDifference(m.rows[src]) }

// IsZero reports whether every entry is zero.
func (m *Dense) IsZero() bool {
	var i int
	for i = range m.rows {
		if m.rows[i].Any() {
			return false
		}
	}

	return true
}

// Clone returns a deep copy.
// Complexity: O(r*c/64).
func (m *Dense) Clone() *Dense {
	out := &Dense{r: m.r, c: m.c, rows: make([]*bitset.BitSet, m.r)}
	var i int
	for i = range m.rows {
		out.rows[i] = m.rows[i].Clone()
	}

	return out
}

// Transpose returns a new c×r matrix with out[j][i] = m[i][j].
// Complexity: O(r*c/64 + nnz).
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.c, m.r) // dimensions are already valid
	m.transposeInto(out)

	return out
}

// TransposeInto writes the transpose into dst, reusing its storage.
// dst must be c×r and must not alias m.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*c/64 + nnz).
func (m *Dense) TransposeInto(dst *Dense) error {
	if dst == nil {
		return fmt.Errorf("TransposeInto: %w", ErrNilMatrix)
	}
	if dst.r != m.c || dst.c != m.r {
		return fmt.Errorf("TransposeInto: dst %dx%d, want %dx%d: %w", dst.r, dst.c, m.c, m.r, ErrDimensionMismatch)
	}
	var i int
	for i = range dst.rows {
		dst.rows[i].ClearAll()
	}
	m.transposeInto(dst)

	return nil
}

func (m *Dense) transposeInto(dst *Dense) {
	var (
		i  int
		j  uint
		ok bool
	)
	for i = range m.rows {
		for j, ok = m.rows[i].NextSet(0); ok; j, ok = m.rows[i].NextSet(j + 1) {
			dst.rows[j].Set(uint(i))
		}
	}
}

// Equal reports whether a and b have the same shape and entries.
func Equal(a, b *Dense) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	var i int
	for i = range a.rows {
		if !a.rows[i].Equal(b.rows[i]) {
			return false
		}
	}

	return true
}

// String renders the matrix as rows of 0/1 characters.
func (m *Dense) String() string {
	var (
		sb   strings.Builder
		i, j int
	)
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if m.rows[i].Test(uint(j)) {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
