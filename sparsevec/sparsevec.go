package sparsevec

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/qdist/csr"
)

// Vector is an ordered set of nonnegative indices with a fixed capacity.
// Indices are strictly increasing; the backing array is allocated once.
type Vector struct {
	idx []int // len(idx) == capacity
	n   int
}

// New returns an empty vector able to hold capacity indices.
func New(capacity int) *Vector {
	return &Vector{idx: make([]int, max(capacity, 0))}
}

// Len returns the number of stored indices (the weight).
func (v *Vector) Len() int { return v.n }

// Cap returns the fixed capacity.
func (v *Vector) Cap() int { return len(v.idx) }

// At returns the i-th smallest index.
func (v *Vector) At(i int) int { return v.idx[i] }

// Indices returns the stored indices in increasing order. The slice aliases
// the vector and is invalidated by the next mutation.
func (v *Vector) Indices() []int { return v.idx[:v.n] }

// Reset empties the vector.
func (v *Vector) Reset() { v.n = 0 }

// SetSingle makes v the one-element set {x}.
func (v *Vector) SetSingle(x int) {
	v.idx[0] = x
	v.n = 1
}

// Clone returns an independent copy with the same capacity.
func (v *Vector) Clone() *Vector {
	return &Vector{idx: slices.Clone(v.idx), n: v.n}
}

// Search returns the position of x and true when present; otherwise the
// position at which x would be inserted and false.
// Complexity: O(log n).
func (v *Vector) Search(x int) (int, bool) {
	pos := sort.SearchInts(v.idx[:v.n], x)

	return pos, pos < v.n && v.idx[pos] == x
}

// Insert adds x, which must be absent, and returns its position.
// Inserting a present value or exceeding the capacity is invalid; it panics
// only when built with the qdistdebug tag.
// Complexity: O(n).
func (v *Vector) Insert(x int) int {
	pos, found := v.Search(x)
	if debugChecks {
		if found {
			panic(fmt.Sprintf("sparsevec: Insert(%d): already present at %d", x, pos))
		}
		if v.n >= len(v.idx) {
			panic(fmt.Sprintf("sparsevec: Insert(%d): capacity %d exhausted", x, len(v.idx)))
		}
	}
	copy(v.idx[pos+1:v.n+1], v.idx[pos:v.n])
	v.idx[pos] = x
	v.n++

	return pos
}

// DeleteAt removes the element at pos.
// Complexity: O(n).
func (v *Vector) DeleteAt(pos int) {
	if debugChecks && (pos < 0 || pos >= v.n) {
		panic(fmt.Sprintf("sparsevec: DeleteAt(%d): weight %d", pos, v.n))
	}
	copy(v.idx[pos:v.n-1], v.idx[pos+1:v.n])
	v.n--
}

// FindDelete removes x if present and reports whether it was.
func (v *Vector) FindDelete(x int) bool {
	pos, found := v.Search(x)
	if !found {
		return false
	}
	v.DeleteAt(pos)

	return true
}

// CombineRow overwrites target with base + m[row] over GF(2) (symmetric
// difference of two sorted lists) and returns the resulting weight.
// target and base must be distinct; target needs capacity for every
// column of m.
// Complexity: O(|base| + w(row)).
func CombineRow(target, base *Vector, m *csr.Matrix, row int) int {
	if debugChecks {
		if target == base {
			panic("sparsevec: CombineRow: target aliases base")
		}
		if row < 0 || row >= m.Rows() || target.Cap() < m.Cols() {
			panic(fmt.Sprintf("sparsevec: CombineRow: row %d of %dx%d into capacity %d", row, m.Rows(), m.Cols(), target.Cap()))
		}
	}
	var (
		r    = m.Row(row)
		b    = base.idx[:base.n]
		out  = target.idx
		i, j int
		k    int
	)
	for i < len(b) && j < len(r) {
		switch {
		case b[i] < r[j]:
			out[k] = b[i]
			i++
			k++
		case b[i] > r[j]:
			out[k] = r[j]
			j++
			k++
		default: // 1+1 = 0
			i++
			j++
		}
	}
	k += copy(out[k:], b[i:])
	k += copy(out[k:], r[j:])
	target.n = k

	return k
}
