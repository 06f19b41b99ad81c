// Package csr provides read-only sparse binary matrices in compressed row
// form, the representation consumed by the connected-cluster search and by
// the nontriviality checks of candidate codewords.
//
// What:
//
//   - FromPairs / FromRows: build from coordinates; duplicate entries cancel.
//   - Transpose, ApplyColumnPermutation: new matrices, rows stay sorted.
//   - ToDense / FromDense: conversion to and from gf2.Dense.
//   - SyndromeNonZero, Syndrome, ProductNonZero: parity checks on sorted supports.
//
// Errors:
//
//   - ErrInvalidDimensions  negative shape.
//   - ErrOutOfRange         coordinate outside the shape.
//   - ErrDimensionMismatch  incompatible operand shapes.
package csr
