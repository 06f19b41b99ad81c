// SPDX-License-Identifier: MIT

// Package distance - Connected-cluster search (exact, iterative deepening).
//
// For w = 1..wmax and every seed column s, the search grows an error
// support e starting from {s}. At each depth it takes the first
// unsatisfied check row of the current syndrome and branches on the
// columns of that row that are larger than s and not yet in e. Any
// codeword whose smallest column is s can be reached this way, because a
// codeword has even overlap with every check row, so some missing column
// of the codeword always sits in the first unsatisfied row.
//
// Rationale:
//  1. Seeds run 0..n-w: a weight-w support has its smallest column there.
//  2. Reachability prune: adding one column changes the syndrome weight by
//     at most maxColumnWeight, so a branch at depth d with syndrome weight
//     s > (w-d)*maxColumnWeight cannot reach a zero syndrome.
//  3. A zero syndrome before depth w is not extended: either it is a
//     nontrivial codeword found at a lower level, or it is trivial and the
//     remaining columns form a lighter codeword of the same class.
//
// The recursion of the textbook formulation is replaced by an explicit
// frame stack; each depth owns its syndrome buffer and the error support
// is shared (insert on push, delete on pop).
//
// Complexity: exponential in wmax; memory O(wmax * r).

package distance

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"time"

	"golang.org/x/time/rate"

	"github.com/katalvlaran/qdist/csr"
	"github.com/katalvlaran/qdist/css"
	"github.com/katalvlaran/qdist/internal/logging"
	"github.com/katalvlaran/qdist/sparsevec"
)

// ccCheckEvery is the node interval between context checks (power of two).
const ccCheckEvery = 4096

// TraceSearch records are throttled to this many per second (burst included).
const ccSearchLogRate = 1000

// ccFrame is one level of the explicit search stack.
type ccFrame struct {
	row  int // first unsatisfied check row at this depth
	next int // index into H.Row(row) of the next candidate column
	col  int // column inserted by this frame, -1 if none
	pos  int // position of col in the error support
}

// ccEngine holds all search data of one ConnectedCluster call.
type ccEngine struct {
	code    *css.Code
	h, ht   *csr.Matrix
	maxColW int
	o       Options
	log     *logging.Logger

	err    *sparsevec.Vector   // current error support, capacity wmax
	syn    []*sparsevec.Vector // syn[d]: syndrome of the depth-d support
	frames []ccFrame           // frames[d] branches from depth d to d+1
	swei   []int               // minimum syndrome weight per error weight

	searchLog  *rate.Limiter // nil unless TraceSearch is set
	suppressed int64         // candidate records dropped by searchLog

	nodes int64
}

// ConnectedCluster runs the connected-cluster search on code for weights
// 1..WMax (see the file header). It returns Distance = w > 0 with the
// codeword when a nontrivial codeword of minimum weight w <= WMax exists,
// and Distance = -WMax otherwise.
//
// Options used: WMax, Start, Ctx, OnCandidate, Trace, Logger, Metrics.
// On cancellation or a hook error the partial result is returned together
// with the error.
//
// Errors: ErrNilCode, ErrWeightCapacity, ErrStartOutOfRange, context and hook errors.
func ConnectedCluster(code *css.Code, opts ...Option) (*Result, error) {
	o := gatherOptions(opts)
	if code == nil || code.H == nil {
		return nil, ErrNilCode
	}
	if o.WMax < 1 {
		return nil, fmt.Errorf("ConnectedCluster: wmax=%d: %w", o.WMax, ErrWeightCapacity)
	}
	n := code.N()
	if o.Start < -1 || o.Start >= n {
		return nil, fmt.Errorf("ConnectedCluster: start=%d for n=%d: %w", o.Start, n, ErrStartOutOfRange)
	}

	var (
		began = time.Now()
		e     = newCCEngine(code, o)
		res   = &Result{Method: MethodCC, Distance: -o.WMax}
		found bool
		err   error
		w     int
	)
	if o.Trace.Has(TraceInfo) {
		e.log.LogStart(o.Ctx, n, code.H.Rows(), code.IsClassical(),
			"wmax", o.WMax, "start", o.Start, "max_column_weight", e.maxColW)
	}
	for w = 1; w <= o.WMax && !found && err == nil; w++ {
		found, err = e.level(w)
	}
	if found {
		res.Distance = e.err.Len()
		res.Codeword = slices.Clone(e.err.Indices())
		o.Metrics.RecordCodeword(MethodCC, res.Distance)
		if o.Trace.Has(TraceCodewords) {
			e.log.LogCodeword(o.Ctx, 0, res.Distance, res.Codeword)
		}
	}

	res.Nodes = e.nodes
	res.MinSyndromeWeight = e.syndromeTable()
	res.Elapsed = time.Since(began)
	if e.suppressed > 0 {
		e.log.DebugContext(o.Ctx, "candidate records suppressed", "count", e.suppressed)
	}
	if o.Trace.Has(TraceMore) {
		for w = 1; w < len(res.MinSyndromeWeight); w++ {
			if res.MinSyndromeWeight[w] >= 0 {
				e.log.LogMinSyndrome(o.Ctx, w, res.MinSyndromeWeight[w])
			}
		}
	}
	o.Metrics.RecordRun(MethodCC, res.Distance, res.Elapsed, err)
	if err != nil {
		return res, fmt.Errorf("ConnectedCluster: %w", err)
	}

	return res, nil
}

func newCCEngine(code *css.Code, o Options) *ccEngine {
	var (
		ht = code.H.Transpose()
		e  = &ccEngine{
			code:    code,
			h:       code.H,
			ht:      ht,
			maxColW: ht.MaxRowWeight(),
			o:       o,
			log:     o.Logger.WithMethod(MethodCC.String()),
			err:     sparsevec.New(o.WMax),
			syn:     make([]*sparsevec.Vector, o.WMax+1),
			frames:  make([]ccFrame, o.WMax+1),
			swei:    make([]int, o.WMax+1),
		}
		i int
	)
	for i = range e.syn {
		e.syn[i] = sparsevec.New(code.H.Rows())
		e.swei[i] = math.MaxInt
	}
	e.swei[0] = 0
	if o.Trace.Has(TraceSearch) {
		e.searchLog = rate.NewLimiter(rate.Limit(ccSearchLogRate), ccSearchLogRate)
	}

	return e
}

// level searches all clusters of weight exactly w.
func (e *ccEngine) level(w int) (bool, error) {
	var (
		beg, end = 0, e.code.N() - w
		before   = e.nodes
		found    bool
		err      error
		s        int
	)
	if e.o.Start >= 0 {
		beg, end = e.o.Start, e.o.Start
	}
	if e.o.Trace.Has(TraceMore) {
		e.log.LogSearchLevel(e.o.Ctx, w, e.o.WMax, beg, end)
	}
	for s = beg; s <= end && !found && err == nil; s++ {
		found, err = e.searchFrom(s, w)
	}
	e.o.Metrics.RecordLevel(w, e.nodes-before)

	return found, err
}

// visit accounts for a new candidate support at weight d whose syndrome
// weight is sw: node count, cancellation, syndrome table and hook.
func (e *ccEngine) visit(d, sw int) error {
	e.nodes++
	if e.nodes&(ccCheckEvery-1) == 0 {
		if err := e.o.Ctx.Err(); err != nil {
			return err
		}
	}
	if sw < e.swei[d] {
		e.swei[d] = sw
	}
	if e.searchLog != nil {
		if e.searchLog.Allow() {
			e.log.DebugContext(e.o.Ctx, "candidate", "weight", d, "syndrome_weight", sw, "support", e.err.Indices())
		} else {
			e.suppressed++
		}
	}
	if e.o.OnCandidate != nil {
		return e.o.OnCandidate(e.err.Indices())
	}

	return nil
}

// accept reports whether a zero-syndrome support is a nontrivial codeword.
func (e *ccEngine) accept(sw int) bool {
	return sw == 0 && e.code.Nontrivial(e.err.Indices())
}

// push prepares frames[d] to branch on the first unsatisfied check of syn[d].
func (e *ccEngine) push(d, seed int) {
	row := e.syn[d].At(0)
	e.frames[d] = ccFrame{
		row:  row,
		next: sort.SearchInts(e.h.Row(row), seed+1),
		col:  -1,
	}
}

// searchFrom enumerates weight-w clusters whose smallest column is seed.
// On success the codeword is left in e.err.
func (e *ccEngine) searchFrom(seed, w int) (bool, error) {
	e.err.SetSingle(seed)
	sw := sparsevec.CombineRow(e.syn[1], e.syn[0], e.ht, seed)
	if err := e.visit(1, sw); err != nil {
		return false, err
	}
	if w == 1 {
		return e.accept(sw), nil
	}
	if sw == 0 {
		return false, nil
	}

	var (
		d        = 1
		f        *ccFrame
		cand     []int
		col, pos int
		found    bool
		pushed   bool
	)
	e.push(1, seed)
	for d >= 1 {
		f = &e.frames[d]
		if f.col >= 0 { // returning from a child: undo its column
			e.err.DeleteAt(f.pos)
			f.col = -1
		}
		cand = e.h.Row(f.row)
		pushed = false
		for f.next < len(cand) {
			col = cand[f.next]
			f.next++
			if _, found = e.err.Search(col); found {
				continue
			}
			pos = e.err.Insert(col)
			f.col, f.pos = col, pos
			sw = sparsevec.CombineRow(e.syn[d+1], e.syn[d], e.ht, col)
			if err := e.visit(d+1, sw); err != nil {
				return false, err
			}
			if d+1 == w {
				if e.accept(sw) {
					return true, nil
				}
			} else if sw != 0 && sw <= (w-d-1)*e.maxColW {
				d++
				e.push(d, seed)
				pushed = true

				break
			}
			e.err.DeleteAt(pos)
			f.col = -1
		}
		if !pushed {
			d--
		}
	}

	return false, nil
}

// syndromeTable converts the internal table to the exported form (-1 = unseen).
func (e *ccEngine) syndromeTable() []int {
	out := make([]int, len(e.swei))
	for i, v := range e.swei {
		if v == math.MaxInt {
			v = -1
		}
		out[i] = v
	}

	return out
}
