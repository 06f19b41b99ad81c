package distance

import (
	"errors"
	"time"
)

var (
	// ErrNilCode is returned when a nil *css.Code is passed to a search.
	ErrNilCode = errors.New("distance: code is nil")

	// ErrStartOutOfRange indicates a start column outside [-1, n).
	ErrStartOutOfRange = errors.New("distance: start column out of range")

	// ErrWeightCapacity indicates a cluster search without a positive weight limit.
	ErrWeightCapacity = errors.New("distance: wmax must be >= 1")

	// ErrInvalidSteps indicates a random-window run with fewer than one trial.
	ErrInvalidSteps = errors.New("distance: steps must be >= 1")

	// ErrInvalidWeight indicates a negative wmin or wmax.
	ErrInvalidWeight = errors.New("distance: weights must be >= 0")

	// ErrUnknownMethod indicates a method bitmap with no supported method or unknown bits.
	ErrUnknownMethod = errors.New("distance: unknown method")
)

// Method is a bitmap of search methods run by Estimate.
type Method uint8

const (
	// MethodRW is the random-window (random information set) search: an upper bound.
	MethodRW Method = 1 << iota
	// MethodCC is the connected-cluster enumeration: exact distance or a lower bound.
	MethodCC

	// MethodBoth runs RW first, then CC capped just below the RW bound.
	MethodBoth = MethodRW | MethodCC
)

// String returns "rw", "cc", "rw+cc" or "unknown".
func (m Method) String() string {
	switch m {
	case MethodRW:
		return "rw"
	case MethodCC:
		return "cc"
	case MethodBoth:
		return "rw+cc"
	default:
		return "unknown"
	}
}

// Trace is a bitmap selecting diagnostic log categories.
type Trace uint

const (
	// TraceInfo logs run parameters and final results.
	TraceInfo Trace = 1
	// TraceMore logs per-level cluster parameters and the syndrome table.
	TraceMore Trace = 2
	// TraceProgress logs random-window progress every 1000 trials.
	TraceProgress Trace = 8
	// TraceCodewords logs every codeword that improves the bound.
	TraceCodewords Trace = 16
	// TraceSearch logs every cluster candidate (very verbose).
	TraceSearch Trace = 32
)

// Has reports whether all bits of f are set in t.
func (t Trace) Has(f Trace) bool { return t&f == f }

// Result is the outcome of a single search run.
//
// Distance is signed:
//   - d > 0: a nontrivial codeword of weight d was found (RW: the best one;
//     CC: the minimum weight).
//   - d < 0: CC found no codeword of weight <= -d; RW stopped early after
//     reaching weight -d <= wmin.
//   - d == 0: RW found no nontrivial codeword below its starting cap.
type Result struct {
	Method   Method
	Distance int

	// Codeword is the sorted support of the codeword behind Distance, if any.
	Codeword []int

	// Trials is the number of random-window trials executed.
	Trials int

	// Nodes is the number of cluster candidates visited.
	Nodes int64

	// MinSyndromeWeight[w] is the smallest syndrome weight observed for an
	// error of weight w during the cluster search, or -1 if none was seen.
	MinSyndromeWeight []int

	Elapsed time.Duration
}

// Bounds combines the results of Estimate.
//
// Lower is always >= 1. Upper == 0 means no upper bound is known. Exact is
// set when the two bounds coincide.
type Bounds struct {
	Lower, Upper int
	Exact        bool

	// NoCodewords marks a code of dimension zero. Both bounds stay 0 and
	// no search is run.
	NoCodewords bool

	// Codeword is a nontrivial codeword of weight Upper, when one is known.
	Codeword []int

	RW, CC *Result
}
