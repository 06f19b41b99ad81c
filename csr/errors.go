// SPDX-License-Identifier: MIT
// Package csr: sentinel error set.

package csr

import "errors"

var (
	// ErrInvalidDimensions indicates a negative row or column count.
	ErrInvalidDimensions = errors.New("csr: dimensions must be >= 0")

	// ErrOutOfRange indicates an entry whose row or column lies outside the matrix.
	ErrOutOfRange = errors.New("csr: index out of range")

	// ErrDimensionMismatch indicates operands with incompatible shapes, e.g.
	// a column permutation whose length differs from the column count.
	ErrDimensionMismatch = errors.New("csr: dimension mismatch")
)
