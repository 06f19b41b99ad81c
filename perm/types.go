package perm

import "errors"

var (
	// ErrLengthMismatch is returned when a permutation and a pivot sequence
	// (or a destination buffer) do not have compatible lengths.
	ErrLengthMismatch = errors.New("perm: length mismatch")

	// ErrInvalidPivot indicates a pivot value outside [i, n) in pivot form,
	// or outside [0, n) in a pivot column list.
	ErrInvalidPivot = errors.New("perm: invalid pivot")

	// ErrNotPermutation indicates an explicit sequence that is not a bijection on {0..n-1}.
	ErrNotPermutation = errors.New("perm: not a permutation")

	// ErrDuplicatePivot indicates a pivot column listed more than once.
	ErrDuplicatePivot = errors.New("perm: duplicate pivot column")
)
