// Package gf2 implements dense binary matrices over GF(2) and the row
// reduction primitives used by distance search and code assembly.
//
// What:
//
//   - Dense: row-major storage, one bitset per row (github.com/bits-and-blooms/bitset).
//   - GaussOne: a single Gauss-Jordan step on one column (full elimination).
//   - EchelonizeOrder / Echelonize / Rank: reduced row echelon form with a
//     caller-chosen column visiting order, returning the pivot columns.
//   - NullSpace: kernel basis from the RREF.
//   - Reducer: incremental echelon basis for membership tests and
//     quotient-space bases.
//
// Complexity:
//
//   - Row XOR and row swap are O(c/64) and O(1); full reduction of an r×c
//     matrix is O(r*c*min(r,c)/64).
//
// Errors:
//
//   - ErrInvalidDimensions  negative shape.
//   - ErrOutOfRange         index outside bounds (checked accessors only).
//   - ErrDimensionMismatch  incompatible destination shapes.
//   - ErrNilMatrix          nil matrix argument.
//
// Concurrency: a Dense is not safe for concurrent mutation.
package gf2
