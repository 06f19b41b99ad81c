// SPDX-License-Identifier: MIT
// Package css: sentinel error set for code assembly.

package css

import "errors"

var (
	// ErrNilMatrix indicates a missing check matrix.
	ErrNilMatrix = errors.New("css: nil check matrix")

	// ErrColumnMismatch indicates H and G (or L) disagree on the number of columns.
	ErrColumnMismatch = errors.New("css: column count mismatch")

	// ErrBothDualAndLogicals indicates both a dual matrix and a logical basis were supplied.
	ErrBothDualAndLogicals = errors.New("css: both dual matrix and logical basis given")

	// ErrNotOrthogonal indicates H·Gᵀ != 0.
	ErrNotOrthogonal = errors.New("css: rows of H and G are not orthogonal")

	// ErrNoLogicals indicates a quantum code that encodes nothing (empty logical basis).
	ErrNoLogicals = errors.New("css: code has no logical operators")

	// ErrNonCSS indicates a request for a non-CSS code, which is not supported.
	ErrNonCSS = errors.New("css: only CSS codes are supported")
)
