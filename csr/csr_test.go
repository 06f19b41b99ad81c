package csr_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/gf2"
	"github.com/katalvlaran/qdist/perm"
)

// CSRSuite exercises construction, conversion and parity checks on the
// Hamming [7,4,3] check matrix.
type CSRSuite struct {
	suite.Suite
	h *csr.Matrix
}

func (s *CSRSuite) SetupTest() {
	h, err := csr.FromRows(7, [][]int{
		{6, 0, 4, 2},
		{1, 2, 5, 6},
		{3, 4, 5, 6},
	})
	require.NoError(s.T(), err)
	s.h = h
}

// TestRowsAreSorted checks compression sorts each row.
func (s *CSRSuite) TestRowsAreSorted() {
	require.Equal(s.T(), []int{0, 2, 4, 6}, s.h.Row(0))
	require.Equal(s.T(), 12, s.h.NNZ())
	require.Equal(s.T(), 4, s.h.MaxRowWeight())
}

// TestFromPairsCancelsDuplicates checks GF(2) accumulation of repeated entries.
func (s *CSRSuite) TestFromPairsCancelsDuplicates() {
	m, err := csr.FromPairs(2, 3, []csr.Pair{
		{Row: 0, Col: 1}, {Row: 0, Col: 1},
		{Row: 1, Col: 2}, {Row: 1, Col: 0}, {Row: 1, Col: 2}, {Row: 1, Col: 2},
	})
	require.NoError(s.T(), err)
	require.Empty(s.T(), m.Row(0))
	require.Equal(s.T(), []int{0, 2}, m.Row(1))
	require.Equal(s.T(), 2, m.NNZ())

	_, err = csr.FromPairs(2, 3, []csr.Pair{{Row: 2, Col: 0}})
	require.ErrorIs(s.T(), err, csr.ErrOutOfRange)
	_, err = csr.New(-1, 0)
	require.ErrorIs(s.T(), err, csr.ErrInvalidDimensions)
}

// TestTranspose checks shape, content and involution.
func (s *CSRSuite) TestTranspose() {
	t := s.h.Transpose()
	require.Equal(s.T(), 7, t.Rows())
	require.Equal(s.T(), 3, t.Cols())
	require.Equal(s.T(), []int{0, 1, 2}, t.Row(6))
	require.Equal(s.T(), []int{0}, t.Row(0))
	require.Equal(s.T(), 3, t.MaxRowWeight())
	require.True(s.T(), csr.Equal(s.h, t.Transpose()))
}

// TestApplyColumnPermutation checks entry (i,j) moves to (i,p[j]).
func (s *CSRSuite) TestApplyColumnPermutation() {
	p := []int{6, 5, 4, 3, 2, 1, 0}
	q, err := s.h.ApplyColumnPermutation(p)
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 2, 4, 6}, q.Row(0))
	require.Equal(s.T(), []int{0, 1, 4, 5}, q.Row(1))
	require.Equal(s.T(), []int{0, 1, 2, 3}, q.Row(2))

	inv, err := perm.Inverse(p)
	require.NoError(s.T(), err)
	back, err := q.ApplyColumnPermutation(inv)
	require.NoError(s.T(), err)
	require.True(s.T(), csr.Equal(s.h, back))

	_, err = s.h.ApplyColumnPermutation([]int{0, 1})
	require.ErrorIs(s.T(), err, csr.ErrDimensionMismatch)
	_, err = s.h.ApplyColumnPermutation([]int{0, 0, 1, 2, 3, 4, 5})
	require.ErrorIs(s.T(), err, perm.ErrNotPermutation)
}

// TestDenseRoundTrip checks ToDense/FromDense agree entrywise.
func (s *CSRSuite) TestDenseRoundTrip() {
	d := s.h.ToDense()
	require.True(s.T(), d.Test(2, 3))
	require.False(s.T(), d.Test(0, 1))
	require.True(s.T(), csr.Equal(s.h, csr.FromDense(d)))

	red := d.Clone()
	red.Echelonize()
	back := csr.FromDense(red)
	require.Equal(s.T(), 3, red.Rank())
	require.Equal(s.T(), 3, back.Rows())
}

// TestSyndrome checks parity of supports against the check rows.
func (s *CSRSuite) TestSyndrome() {
	require.False(s.T(), s.h.SyndromeNonZero([]int{0, 1, 2}))
	require.False(s.T(), s.h.SyndromeNonZero(nil))
	require.True(s.T(), s.h.SyndromeNonZero([]int{6}))
	require.Equal(s.T(), []int{0, 1, 2}, s.h.Syndrome([]int{6}, nil))
	require.Equal(s.T(), []int{2}, s.h.Syndrome([]int{3}, nil))
}

// TestProductNonZero checks orthogonality detection.
func (s *CSRSuite) TestProductNonZero() {
	nz, err := csr.ProductNonZero(s.h, s.h)
	require.NoError(s.T(), err)
	require.False(s.T(), nz, "simplex code is self-orthogonal")

	e, err := csr.FromRows(7, [][]int{{0}})
	require.NoError(s.T(), err)
	nz, err = csr.ProductNonZero(s.h, e)
	require.NoError(s.T(), err)
	require.True(s.T(), nz)

	other, err := csr.New(1, 5)
	require.NoError(s.T(), err)
	_, err = csr.ProductNonZero(s.h, other)
	require.ErrorIs(s.T(), err, csr.ErrDimensionMismatch)
}

// TestString checks the 1-based listing.
func (s *CSRSuite) TestString() {
	m, err := csr.FromRows(3, [][]int{{0, 2}, {}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "# binary CSR matrix (2 x 3), nz=2\n1: 1 3\n2:\n", m.String())
}

func TestCSRSuite(t *testing.T) {
	suite.Run(t, new(CSRSuite))
}

func TestFromDense_EmptyRows(t *testing.T) {
	d, err := gf2.NewDense(3, 4)
	require.NoError(t, err)
	m := csr.FromDense(d)
	require.Equal(t, 0, m.NNZ())
	require.Equal(t, 0, m.MaxRowWeight())
	require.False(t, m.SyndromeNonZero([]int{1, 2}))
}
