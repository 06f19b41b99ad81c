// Package mmio reads and writes binary sparse matrices in the Matrix Market
// coordinate format used for parity-check and generator matrices.
//
//	%%MatrixMarket matrix coordinate integer general
//	% optional comments
//	3 7 12
//	1 1 1
//	...
//
// Entries are 1-indexed "row col value" triples with value 1 (the value is
// absent for the pattern field). Duplicate entries cancel over GF(2).
//
// Open and Create handle compressed files transparently by extension:
// ".gz" (gzip), ".zst" (zstd) and ".lz4" (lz4 frame).
package mmio
