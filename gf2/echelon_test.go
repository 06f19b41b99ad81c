package gf2_test

import (
	"testing"

	"github.com/bits-and-blooms/bitset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdist/gf2"
	"github.com/katalvlaran/qdist/perm"
)

// requireRREF checks that every pivot column is the unit vector of its row.
func requireRREF(t *testing.T, m *gf2.Dense, pivots []int) {
	t.Helper()
	var i, k int
	for k = range pivots {
		for i = 0; i < m.Rows(); i++ {
			require.Equal(t, i == k, m.Test(i, pivots[k]), "row %d pivot col %d", i, pivots[k])
		}
	}
	for i = len(pivots); i < m.Rows(); i++ {
		require.True(t, m.Row(i).None(), "row %d below rank must be zero", i)
	}
}

func TestGaussOne(t *testing.T) {
	m := hamming(t)
	assert.True(t, m.GaussOne(6, 0))
	assert.Equal(t, []int{0, 2, 4, 6}, m.RowSupport(0, nil))
	assert.False(t, m.Test(1, 6))
	assert.False(t, m.Test(2, 6))

	// column 6 is now zero below row 0
	assert.False(t, m.GaussOne(6, 1))
}

func TestEchelonize_Hamming(t *testing.T) {
	m := hamming(t)
	pivots := m.Echelonize()
	assert.Equal(t, []int{0, 1, 3}, pivots)
	requireRREF(t, m, pivots)
	assert.Equal(t, 3, hamming(t).Rank())
}

func TestEchelonizeOrder_RandomOrders(t *testing.T) {
	var (
		rng   = perm.NewRand(17)
		order = make([]int, 7)
		piv   = make([]int, 7)
		trial int
	)
	for trial = 0; trial < 30; trial++ {
		m := hamming(t)
		require.NoError(t, perm.RandomOrder(order, piv, rng))

		pivots, err := m.EchelonizeOrder(order, nil)
		require.NoError(t, err)
		require.Len(t, pivots, 3)
		requireRREF(t, m, pivots)
	}

	_, err := hamming(t).EchelonizeOrder([]int{0, 9}, nil)
	assert.ErrorIs(t, err, gf2.ErrOutOfRange)
}

func TestRank_DependentRowsAndNoMutation(t *testing.T) {
	m, err := gf2.FromSupports(4, [][]int{{0, 1}, {1, 2}, {0, 2}, {}})
	require.NoError(t, err)
	before := m.Clone()
	assert.Equal(t, 2, m.Rank())
	assert.True(t, gf2.Equal(before, m))
}

func TestNullSpace_Hamming(t *testing.T) {
	h := hamming(t)
	k := h.NullSpace()
	require.Equal(t, 4, k.Rows())
	require.Equal(t, 7, k.Cols())
	assert.Equal(t, 4, k.Rank())

	var i, j int
	for i = 0; i < k.Rows(); i++ {
		require.True(t, k.Row(i).Any())
		for j = 0; j < h.Rows(); j++ {
			assert.Zero(t, h.Row(j).IntersectionCardinality(k.Row(i))%2, "kernel row %d vs check %d", i, j)
		}
	}
}

func TestNullSpace_FullRankAndEmpty(t *testing.T) {
	id, err := gf2.FromSupports(3, [][]int{{0}, {1}, {2}})
	require.NoError(t, err)
	assert.Equal(t, 0, id.NullSpace().Rows())

	empty, err := gf2.NewDense(0, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, empty.NullSpace().Rows())
}

func TestReducer(t *testing.T) {
	h := hamming(t)
	r := gf2.NewReducer(7)
	var i int
	for i = 0; i < h.Rows(); i++ {
		require.True(t, r.Add(h.Row(i).Clone()))
	}
	assert.Equal(t, 3, r.Rank())

	sum := h.Row(0).Clone()
	sum.InPlaceSymmetricDifference(h.Row(2))
	assert.False(t, r.Add(sum))
	assert.True(t, sum.None())
	assert.Equal(t, 3, r.Rank())

	v := bitset.New(7).Set(0)
	assert.True(t, r.Reduce(v))
	assert.True(t, r.Add(bitset.New(7).Set(0)))
	assert.Equal(t, 4, r.Rank())
}
