package distance_test

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/css"
	"github.com/katalvlaran/qdist/perm"
)

func mustRows(tb testing.TB, cols int, rows [][]int) *csr.Matrix {
	tb.Helper()
	m, err := csr.FromRows(cols, rows)
	require.NoError(tb, err)

	return m
}

var hammingRows = [][]int{{0, 2, 4, 6}, {1, 2, 5, 6}, {3, 4, 5, 6}}

// hamming is the [7,4,3] Hamming code.
func hamming(tb testing.TB) *css.Code {
	tb.Helper()
	c, err := css.NewClassical(mustRows(tb, 7, hammingRows))
	require.NoError(tb, err)

	return c
}

// steane is the [[7,1,3]] CSS code built from two Hamming matrices.
func steane(tb testing.TB) *css.Code {
	tb.Helper()
	c, err := css.NewWithDual(mustRows(tb, 7, hammingRows), mustRows(tb, 7, hammingRows))
	require.NoError(tb, err)

	return c
}

// toy is the [[4,1,2]] code: H = [1111], G = [1100; 0011].
func toy(tb testing.TB) *css.Code {
	tb.Helper()
	c, err := css.NewWithDual(mustRows(tb, 4, [][]int{{0, 1, 2, 3}}), mustRows(tb, 4, [][]int{{0, 1}, {2, 3}}))
	require.NoError(tb, err)

	return c
}

// repetition is the [n,1,n] repetition code with checks x_i + x_{i+1}.
func repetition(tb testing.TB, n int) *css.Code {
	tb.Helper()
	rows := make([][]int, n-1)
	for i := range rows {
		rows[i] = []int{i, i + 1}
	}
	c, err := css.NewClassical(mustRows(tb, n, rows))
	require.NoError(tb, err)

	return c
}

// randomClassical draws an r×n check matrix with independent fair bits.
func randomClassical(tb testing.TB, r, n int, seed int64) *css.Code {
	tb.Helper()
	rng := perm.NewRand(seed)
	rows := make([][]int, r)
	for i := range rows {
		for j := 0; j < n; j++ {
			if rng.Intn(2) == 1 {
				rows[i] = append(rows[i], j)
			}
		}
	}
	c, err := css.NewClassical(mustRows(tb, n, rows))
	require.NoError(tb, err)

	return c
}

// bruteForce returns the minimum weight of a nontrivial codeword by
// enumerating all 2^n vectors (n <= 20), or 0 if none exists.
func bruteForce(tb testing.TB, c *css.Code) int {
	tb.Helper()
	n := c.N()
	require.LessOrEqual(tb, n, 20)
	best := 0
	support := make([]int, 0, n)
	for v := uint32(1); v < 1<<n; v++ {
		w := bits.OnesCount32(v)
		if best != 0 && w >= best {
			continue
		}
		support = support[:0]
		for j := 0; j < n; j++ {
			if v&(1<<j) != 0 {
				support = append(support, j)
			}
		}
		if c.H.SyndromeNonZero(support) || !c.Nontrivial(support) {
			continue
		}
		best = w
	}

	return best
}

// requireCodeword checks that support is sorted, in ker(H) and nontrivial.
func requireCodeword(tb testing.TB, c *css.Code, support []int) {
	tb.Helper()
	for i := 1; i < len(support); i++ {
		require.Less(tb, support[i-1], support[i])
	}
	require.False(tb, c.H.SyndromeNonZero(support), "codeword %v violates a check", support)
	require.True(tb, c.Nontrivial(support), "codeword %v is trivial", support)
}

// withZeroRow appends an all-zero check row to H.
func withZeroRow(tb testing.TB, c *css.Code) *css.Code {
	tb.Helper()
	rows := make([][]int, c.H.Rows()+1)
	for i := 0; i < c.H.Rows(); i++ {
		rows[i] = append([]int(nil), c.H.Row(i)...)
	}
	out, err := css.NewClassical(mustRows(tb, c.N(), rows))
	require.NoError(tb, err)

	return out
}
