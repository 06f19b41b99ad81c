// SPDX-License-Identifier: MIT
// Package gf2: sentinel error set.
// All exported operations return these sentinels (possibly wrapped with
// fmt.Errorf("Op: %w", ...)); callers match with errors.Is.

package gf2

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("gf2: dimensions must be >= 0")

	// ErrOutOfRange indicates a row or column index outside the matrix bounds.
	ErrOutOfRange = errors.New("gf2: index out of range")

	// ErrDimensionMismatch indicates operands with incompatible shapes,
	// e.g. a transpose destination that is not cols×rows.
	ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

	// ErrNilMatrix indicates a nil *Dense receiver or argument.
	ErrNilMatrix = errors.New("gf2: nil matrix")
)
