package distance

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/qdist/css"
)

// Estimate runs the selected methods and combines their results into
// distance bounds.
//
// Implementation:
//   - Stage 1 (MethodRW): random-window search gives Upper = |d| when d != 0.
//   - Stage 2 (MethodCC): the cluster search runs up to
//     wmax' = min(WMax, Upper-1) (WMax == 0 means Upper-1). A codeword of
//     weight d gives Lower = Upper = d; exhausting wmax' gives Lower = wmax'+1.
//     When Upper is 1 no search below it is needed.
//   - A classical code of dimension zero has no nonzero codeword; it is
//     reported through Bounds.NoCodewords before either stage runs.
//
// Errors: ErrUnknownMethod, ErrWeightCapacity (CC without any weight limit),
// and the errors of RandomWindow and ConnectedCluster. On a search error
// the bounds gathered so far are returned with it.
func Estimate(code *css.Code, methods Method, opts ...Option) (*Bounds, error) {
	if methods&MethodBoth == 0 || methods&^MethodBoth != 0 {
		return nil, fmt.Errorf("Estimate: methods=%d: %w", methods, ErrUnknownMethod)
	}
	var (
		o   = gatherOptions(opts)
		b   = &Bounds{Lower: 1}
		res *Result
		err error
	)

	if code != nil && code.IsClassical() && code.Dimension() == 0 {
		b.Lower = 0
		b.NoCodewords = true

		return b.finish(o), nil
	}

	if methods&MethodRW != 0 {
		res, err = RandomWindow(code, opts...)
		b.RW = res
		if res != nil && res.Distance != 0 {
			b.Upper = abs(res.Distance)
			b.Codeword = res.Codeword
		}
		if err != nil {
			return b.finish(o), err
		}
	}

	if methods&MethodCC != 0 {
		wmax := o.WMax
		if b.Upper > 0 && (wmax == 0 || wmax > b.Upper-1) {
			wmax = b.Upper - 1
		}
		if wmax < 1 && b.Upper == 1 {
			return b.finish(o), nil
		}
		ccOpts := append(slices.Clone(opts), WithWMax(wmax))
		res, err = ConnectedCluster(code, ccOpts...)
		b.CC = res
		if res != nil && err == nil {
			if res.Distance > 0 {
				b.Lower, b.Upper = res.Distance, res.Distance
				b.Codeword = res.Codeword
			} else {
				b.Lower = -res.Distance + 1
			}
		}
		if err != nil {
			return b.finish(o), err
		}
	}

	return b.finish(o), nil
}

func (b *Bounds) finish(o Options) *Bounds {
	b.Exact = b.Upper > 0 && b.Lower == b.Upper
	if o.Trace.Has(TraceInfo) {
		o.Logger.LogBounds(o.Ctx, b.Lower, b.Upper, b.Exact, nil)
	}

	return b
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}
