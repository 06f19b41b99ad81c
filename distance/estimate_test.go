package distance_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/css"
	"github.com/katalvlaran/qdist/distance"
	"github.com/katalvlaran/qdist/internal/logging"
)

func TestEstimate_BothMethods(t *testing.T) {
	b, err := distance.Estimate(steane(t), distance.MethodBoth, distance.WithSteps(10))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Lower)
	assert.Equal(t, 3, b.Upper)
	assert.True(t, b.Exact)
	require.NotNil(t, b.RW)
	require.NotNil(t, b.CC)
	assert.Equal(t, -2, b.CC.Distance, "CC runs just below the RW bound")
	requireCodeword(t, steane(t), b.Codeword)
}

func TestEstimate_CCFindsBelowCap(t *testing.T) {
	// RW cannot go below its cap of 3, CC then finds the weight-3 words
	b, err := distance.Estimate(hamming(t), distance.MethodBoth, distance.WithSteps(5), distance.WithWMax(3))
	require.NoError(t, err)
	assert.Equal(t, 0, b.RW.Distance)
	assert.Equal(t, 3, b.CC.Distance)
	assert.Equal(t, 3, b.Lower)
	assert.Equal(t, 3, b.Upper)
	assert.True(t, b.Exact)
	assert.Equal(t, []int{0, 1, 2}, b.Codeword)
}

func TestEstimate_SingleMethod(t *testing.T) {
	b, err := distance.Estimate(steane(t), distance.MethodRW, distance.WithSteps(10))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Lower)
	assert.Equal(t, 3, b.Upper)
	assert.False(t, b.Exact)
	assert.Nil(t, b.CC)

	b, err = distance.Estimate(steane(t), distance.MethodCC, distance.WithWMax(2))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Lower)
	assert.Equal(t, 0, b.Upper, "no codeword, no upper bound")
	assert.False(t, b.Exact)
	assert.Nil(t, b.RW)

	b, err = distance.Estimate(steane(t), distance.MethodCC, distance.WithWMax(3))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Lower)
	assert.Equal(t, 3, b.Upper)
	assert.True(t, b.Exact)
}

func TestEstimate_WeightOne(t *testing.T) {
	h, err := csr.FromRows(4, [][]int{{0, 1}, {1, 2}})
	require.NoError(t, err)
	c, err := css.NewClassical(h)
	require.NoError(t, err)

	b, err := distance.Estimate(c, distance.MethodBoth, distance.WithSteps(4))
	require.NoError(t, err)
	assert.Equal(t, 1, b.Lower)
	assert.Equal(t, 1, b.Upper)
	assert.True(t, b.Exact)
	assert.Nil(t, b.CC, "nothing lies below weight one")
	assert.Equal(t, []int{3}, b.Codeword)
}

func TestEstimate_ZeroRow(t *testing.T) {
	c := withZeroRow(t, hamming(t))
	b, err := distance.Estimate(c, distance.MethodBoth, distance.WithSteps(20))
	require.NoError(t, err)
	assert.Equal(t, 3, b.Lower)
	assert.Equal(t, 3, b.Upper)
	assert.True(t, b.Exact)
	requireCodeword(t, c, b.Codeword)
}

func TestEstimate_DimensionZero(t *testing.T) {
	h, err := csr.FromRows(3, [][]int{{0}, {0, 1}, {1, 2}})
	require.NoError(t, err)
	c, err := css.NewClassical(h)
	require.NoError(t, err)

	for _, m := range []distance.Method{distance.MethodRW, distance.MethodCC, distance.MethodBoth} {
		b, err := distance.Estimate(c, m)
		require.NoError(t, err, "method=%d", m)
		assert.True(t, b.NoCodewords)
		assert.Zero(t, b.Lower)
		assert.Zero(t, b.Upper)
		assert.False(t, b.Exact)
		assert.Nil(t, b.RW)
		assert.Nil(t, b.CC)
	}
}

func TestEstimate_Errors(t *testing.T) {
	for _, m := range []distance.Method{0, 4, distance.MethodBoth | 8} {
		_, err := distance.Estimate(hamming(t), m)
		assert.ErrorIs(t, err, distance.ErrUnknownMethod, "method=%d", m)
	}

	b, err := distance.Estimate(hamming(t), distance.MethodCC)
	require.ErrorIs(t, err, distance.ErrWeightCapacity)
	require.NotNil(t, b)
	assert.Equal(t, 1, b.Lower)

	_, err = distance.Estimate(nil, distance.MethodRW)
	assert.ErrorIs(t, err, distance.ErrNilCode)
}

func TestEstimate_Logging(t *testing.T) {
	var buf bytes.Buffer
	lg := logging.NewJSONLogger(&buf, slog.LevelInfo)
	_, err := distance.Estimate(steane(t), distance.MethodBoth,
		distance.WithSteps(3), distance.WithLogger(lg), distance.WithTrace(distance.TraceInfo))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"method":"rw"`)
	assert.Contains(t, buf.String(), `"method":"cc"`)
	assert.Contains(t, buf.String(), `"exact":true`)
}
