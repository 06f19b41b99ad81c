// Package distance computes bounds on the minimum distance of a binary
// linear code or a CSS quantum code (see package css).
//
// What:
//
//   - RandomWindow: random information-set search; an upper bound, fast
//     for any code, tightens with more trials.
//   - ConnectedCluster: depth-first enumeration of connected error
//     clusters in canonical order; the exact distance if it is at most
//     wmax, otherwise a certified lower bound wmax+1. Efficient for sparse
//     (LDPC) check matrices.
//   - Estimate: runs RW then CC capped just below the RW bound, and
//     combines both into Bounds.
//
// Configuration uses functional options (WithSteps, WithWMax, WithSeed,
// WithContext, WithLogger, WithMetrics, WithOnCandidate, ...) on top of
// DefaultOptions. Searches are single-threaded and deterministic for a
// fixed seed.
//
// Result.Distance is signed: positive for a found codeword weight,
// negative for a bound or an early stop, zero when RW found nothing below
// its cap.
//
// Complexity:
//
//   - RW: O(steps * r*n*min(r,n)/64) time, O(r*n/64) memory.
//   - CC: exponential in wmax (roughly n * (row weight)^(wmax-1)), O(wmax*r) memory.
//
// Errors:
//
//   - ErrNilCode          nil code.
//   - ErrInvalidSteps     RW with steps < 1.
//   - ErrInvalidWeight    negative wmin or wmax.
//   - ErrWeightCapacity   CC with wmax < 1.
//   - ErrStartOutOfRange  CC start outside [-1, n).
//   - ErrUnknownMethod    Estimate with an empty or unknown method bitmap.
//
// Build with -tags qdistdebug to verify every RW candidate against H.
package distance
