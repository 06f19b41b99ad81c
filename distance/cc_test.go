package distance_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/qdist/distance"
	"github.com/katalvlaran/qdist/internal/logging"
)

// ClusterSuite exercises the connected-cluster engine.
type ClusterSuite struct {
	suite.Suite
}

// TestHammingExact verifies the exact distance and the canonical first codeword.
func (s *ClusterSuite) TestHammingExact() {
	c := hamming(s.T())
	res, err := distance.ConnectedCluster(c, distance.WithWMax(3))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Distance)
	require.Equal(s.T(), []int{0, 1, 2}, res.Codeword)
	require.Equal(s.T(), distance.MethodCC, res.Method)
	require.Positive(s.T(), res.Nodes)
	requireCodeword(s.T(), c, res.Codeword)
}

// TestHammingBelowDistance verifies the certified lower bound.
func (s *ClusterSuite) TestHammingBelowDistance() {
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), -2, res.Distance)
	require.Nil(s.T(), res.Codeword)
	require.Equal(s.T(), []int{0, 1, 1}, res.MinSyndromeWeight)
}

// TestZeroRowIsHarmless verifies an all-zero check does not change the result.
func (s *ClusterSuite) TestZeroRowIsHarmless() {
	c := withZeroRow(s.T(), hamming(s.T()))
	res, err := distance.ConnectedCluster(c, distance.WithWMax(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Distance)
}

// TestStartColumn verifies single-seed searches.
func (s *ClusterSuite) TestStartColumn() {
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3), distance.WithStart(0))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Distance)
	require.Equal(s.T(), 0, res.Codeword[0])

	// column 6 is the largest: no weight-3 support has it as its smallest column
	res, err = distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3), distance.WithStart(6))
	require.NoError(s.T(), err)
	require.Equal(s.T(), -3, res.Distance)

	for _, bad := range []int{-2, 7} {
		_, err = distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3), distance.WithStart(bad))
		require.ErrorIs(s.T(), err, distance.ErrStartOutOfRange)
	}
}

// TestQuantum verifies stabilizers are skipped.
func (s *ClusterSuite) TestQuantum() {
	res, err := distance.ConnectedCluster(steane(s.T()), distance.WithWMax(5))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 3, res.Distance)
	requireCodeword(s.T(), steane(s.T()), res.Codeword)

	res, err = distance.ConnectedCluster(toy(s.T()), distance.WithWMax(4))
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, res.Distance)
	require.Equal(s.T(), []int{0, 2}, res.Codeword, "{0,1} is a stabilizer and must be skipped")
}

// TestMonotoneInWMax verifies -wmax below the distance and d from it on.
func (s *ClusterSuite) TestMonotoneInWMax() {
	c := repetition(s.T(), 6)
	for wmax := 1; wmax <= 8; wmax++ {
		res, err := distance.ConnectedCluster(c, distance.WithWMax(wmax))
		require.NoError(s.T(), err)
		if wmax < 6 {
			require.Equal(s.T(), -wmax, res.Distance, "wmax=%d", wmax)
		} else {
			require.Equal(s.T(), 6, res.Distance, "wmax=%d", wmax)
		}
	}
}

// TestAgreesWithBruteForce compares against exhaustive enumeration.
func (s *ClusterSuite) TestAgreesWithBruteForce() {
	for seed := int64(1); seed <= 12; seed++ {
		c := randomClassical(s.T(), 6, 12, seed)
		want := bruteForce(s.T(), c)
		require.Positive(s.T(), want, "a 6x12 check matrix always has codewords")

		res, err := distance.ConnectedCluster(c, distance.WithWMax(12))
		require.NoError(s.T(), err)
		require.Equal(s.T(), want, res.Distance, "seed=%d", seed)
		requireCodeword(s.T(), c, res.Codeword)
	}
	require.Equal(s.T(), 2, bruteForce(s.T(), toy(s.T())))
	require.Equal(s.T(), 3, bruteForce(s.T(), steane(s.T())))
}

// TestCandidateHook verifies the canonical ordering seen by OnCandidate.
// Branching admits any column above the seed, not only above the last one
// inserted, so a support may be reached more than once (see TestRevisits).
func (s *ClusterSuite) TestCandidateHook() {
	const (
		seed = 2
		wmax = 4
	)
	var calls int
	hook := func(support []int) error {
		calls++
		require.True(s.T(), sort.IntsAreSorted(support))
		require.Equal(s.T(), seed, support[0], "seed is the smallest column")
		require.LessOrEqual(s.T(), len(support), wmax)

		return nil
	}
	res, err := distance.ConnectedCluster(repetition(s.T(), 9), distance.WithWMax(wmax),
		distance.WithStart(seed), distance.WithOnCandidate(hook))
	require.NoError(s.T(), err)
	require.Equal(s.T(), -wmax, res.Distance)
	require.EqualValues(s.T(), calls, res.Nodes)
}

// TestRevisits pins how often supports repeat on the Hamming code. Each
// weight level restarts from the seeds, so lighter prefixes are seen again:
// level 1 visits 7 singles, level 2 visits seeds 0..5 and 13 pairs, and
// level 3 stops at {0,1,2} after {0} and {0,2}.
func (s *ClusterSuite) TestRevisits() {
	var (
		calls int
		seen  = make(map[string]int)
	)
	hook := func(support []int) error {
		calls++
		seen[fmt.Sprint(support)]++

		return nil
	}
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3), distance.WithOnCandidate(hook))
	require.NoError(s.T(), err)
	require.Equal(s.T(), []int{0, 1, 2}, res.Codeword)
	require.Equal(s.T(), 29, calls)
	require.Len(s.T(), seen, 21)
	require.Equal(s.T(), 3, seen["[0]"])
	require.Equal(s.T(), 2, seen["[0 2]"])
	require.Equal(s.T(), 1, seen["[6]"], "no level-2 cluster starts at the last column")
}

// TestHookAbort verifies a hook error stops the search.
func (s *ClusterSuite) TestHookAbort() {
	stop := errors.New("stop")
	var calls int
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3),
		distance.WithOnCandidate(func([]int) error {
			calls++
			if calls == 5 {
				return stop
			}

			return nil
		}))
	require.ErrorIs(s.T(), err, stop)
	require.NotNil(s.T(), res)
	require.EqualValues(s.T(), 5, res.Nodes)
}

// TestInvalidInput verifies argument validation.
func (s *ClusterSuite) TestInvalidInput() {
	_, err := distance.ConnectedCluster(hamming(s.T()))
	require.ErrorIs(s.T(), err, distance.ErrWeightCapacity)

	_, err = distance.ConnectedCluster(nil, distance.WithWMax(3))
	require.ErrorIs(s.T(), err, distance.ErrNilCode)
}

// TestMetrics verifies per-level node accounting.
func (s *ClusterSuite) TestMetrics() {
	m := &distance.BasicMetricsCollector{}
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(3), distance.WithMetrics(m))
	require.NoError(s.T(), err)

	st := m.GetStats()
	require.Equal(s.T(), res.Nodes, st.Nodes)
	require.Len(s.T(), st.NodesByWeight, 3)
	require.EqualValues(s.T(), 7, st.NodesByWeight[1], "one node per seed column at weight 1")
	require.EqualValues(s.T(), 1, st.Codewords)
	require.Equal(s.T(), 3, st.LightestCW)
	require.EqualValues(s.T(), 1, st.Runs)
}

// TestSearchTrace verifies one debug record per candidate on a small search.
func (s *ClusterSuite) TestSearchTrace() {
	var buf bytes.Buffer
	lg := logging.NewJSONLogger(&buf, slog.LevelDebug)
	res, err := distance.ConnectedCluster(hamming(s.T()), distance.WithWMax(2),
		distance.WithLogger(lg), distance.WithTrace(distance.TraceSearch))
	require.NoError(s.T(), err)
	require.EqualValues(s.T(), res.Nodes, strings.Count(buf.String(), `"msg":"candidate"`))
	require.NotContains(s.T(), buf.String(), "suppressed")
}

func TestClusterSuite(t *testing.T) {
	suite.Run(t, new(ClusterSuite))
}
