// SPDX-License-Identifier: MIT

// Package distance - Random-window (random information set) search.
//
// Each trial draws a uniformly random column order, reduces a working copy
// of H to reduced row echelon form in that order, and reads off one
// codeword per non-pivot column c:
//
//	{c} ∪ { pivot(i) : rref[i][c] = 1 }
//
// These n-rank vectors span ker(H). The lightest nontrivial one over all
// trials is an upper bound on the distance.
//
// Implementation notes:
//   - The working matrix is reduced in place trial after trial; row
//     operations preserve the row space, so no reset is needed.
//   - The reduced matrix is transposed once per trial so that the column of
//     c is a single bitset row.
//   - A candidate is abandoned as soon as its size reaches the current
//     minimum.
//
// Complexity: O(steps * (r*n*min(r,n)/64 + (n-r)*r)) time, O(r*n/64) space.

package distance

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/qdist/css"
	"github.com/katalvlaran/qdist/gf2"
	"github.com/katalvlaran/qdist/perm"
)

// rwProgressEvery is the trial interval of TraceProgress records.
const rwProgressEvery = 1000

// RandomWindow runs the random-window search on code and returns an upper
// bound in Result.Distance (see Result for the sign convention).
//
// Options used: Steps, WMin, WMax, Seed/Rand, Ctx, Trace, Logger, Metrics.
// The search starts from minimum WMax when WMax > 0, otherwise n+1, and
// stops early once the minimum drops to WMin or below.
//
// On cancellation the partial result is returned together with the context
// error.
//
// Errors: ErrNilCode, ErrInvalidSteps, ErrInvalidWeight, context errors.
func RandomWindow(code *css.Code, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	if code == nil || code.H == nil {
		return nil, ErrNilCode
	}
	if o.Steps < 1 {
		return nil, fmt.Errorf("RandomWindow: steps=%d: %w", o.Steps, ErrInvalidSteps)
	}
	if o.WMin < 0 || o.WMax < 0 {
		return nil, fmt.Errorf("RandomWindow: wmin=%d wmax=%d: %w", o.WMin, o.WMax, ErrInvalidWeight)
	}

	var (
		began = time.Now()
		log   = o.Logger.WithMethod(MethodRW.String())
		n     = code.N()
		minW  = n + 1
		res   = &Result{Method: MethodRW}
		err   error
	)
	if o.WMax > 0 {
		minW = o.WMax
	}
	if o.Trace.Has(TraceInfo) {
		log.LogStart(o.Ctx, n, code.H.Rows(), code.IsClassical(),
			"steps", o.Steps, "wmin", o.WMin, "wmax", o.WMax)
	}

	e := newRWEngine(code, o)
	for res.Trials = 0; res.Trials < o.Steps; res.Trials++ {
		if err = o.Ctx.Err(); err != nil {
			break
		}
		if e.trial(res.Trials, &minW, res) {
			res.Trials++
			break
		}
		if o.Trace.Has(TraceProgress) && (res.Trials+1)%rwProgressEvery == 0 {
			log.LogRound(o.Ctx, res.Trials+1, o.Steps, minW)
		}
	}

	switch {
	case res.Codeword == nil:
		res.Distance = 0
	case len(res.Codeword) <= o.WMin:
		res.Distance = -len(res.Codeword)
	default:
		res.Distance = len(res.Codeword)
	}
	res.Elapsed = time.Since(began)
	o.Metrics.RecordRun(MethodRW, res.Distance, res.Elapsed, err)
	if err != nil {
		return res, fmt.Errorf("RandomWindow: %w", err)
	}

	return res, nil
}

// rwEngine holds the per-call buffers of the random-window search.
type rwEngine struct {
	code *css.Code
	o    Options
	n    int

	mh *gf2.Dense // working copy of H, reduced in place
	ht *gf2.Dense // transpose of the reduced matrix

	pivs    []int // LAPACK pivots, then pivot columns in row order
	order   []int // explicit column order of the trial
	skip    []int // sorted non-pivot columns
	scratch []int // sorted pivots for SkipPivots
	ee      []int // candidate support
}

func newRWEngine(code *css.Code, o Options) *rwEngine {
	var (
		n  = code.N()
		mh = code.H.ToDense()
	)
	ht, _ := gf2.NewDense(n, mh.Rows()) // shape taken from a valid matrix
	e := &rwEngine{
		code:    code,
		o:       o,
		n:       n,
		mh:      mh,
		ht:      ht,
		pivs:    make([]int, n),
		order:   make([]int, n),
		skip:    make([]int, 0, n),
		scratch: make([]int, n),
		ee:      make([]int, 0, n),
	}
	if e.o.Rand == nil {
		e.o.Rand = perm.NewRand(o.Seed)
	}

	return e
}

// trial runs one random window. It lowers *minW and records the codeword in
// res when a lighter nontrivial codeword is found, and reports whether the
// early-termination weight was reached.
func (e *rwEngine) trial(step int, minW *int, res *Result) bool {
	var (
		rank   int
		pivots []int
		col    int
		j      uint
		ok     bool
	)
	_ = perm.RandomOrder(e.order, e.pivs, e.o.Rand) // both sized n at construction

	pivots, _ = e.mh.EchelonizeOrder(e.order, e.pivs[:0]) // order is a permutation of the columns
	rank = len(pivots)
	e.skip, _ = perm.SkipPivots(e.n, pivots, e.skip, e.scratch) // pivots are distinct columns
	_ = e.mh.TransposeInto(e.ht)                                // shapes fixed at construction
	e.o.Metrics.RecordTrial(rank)

	for _, col = range e.skip {
		e.ee = append(e.ee[:0], col)
		row := e.ht.Row(col)
		for j, ok = row.NextSet(0); ok && len(e.ee) < *minW; j, ok = row.NextSet(j + 1) {
			e.ee = append(e.ee, pivots[j])
		}
		if len(e.ee) >= *minW {
			continue
		}
		slices.Sort(e.ee)
		if debugChecks && e.code.H.SyndromeNonZero(e.ee) {
			panic(fmt.Sprintf("distance: random-window vector %v is not in ker(H)", e.ee))
		}
		if !e.code.Nontrivial(e.ee) {
			continue
		}

		*minW = len(e.ee)
		res.Codeword = slices.Clone(e.ee)
		e.o.Metrics.RecordCodeword(MethodRW, *minW)
		if e.o.Trace.Has(TraceCodewords) {
			e.o.Logger.WithMethod(MethodRW.String()).LogCodeword(e.o.Ctx, step, *minW, res.Codeword)
		}
		if *minW <= e.o.WMin {
			return true
		}
	}

	return false
}
