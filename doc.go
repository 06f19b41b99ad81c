// Package qdist estimates the minimum distance of binary linear codes and
// CSS quantum codes, from a random-window upper bound down to an exact
// value certified by connected-cluster enumeration.
//
// What is qdist?
//
//	A pure-Go toolkit for GF(2) code analysis:
//		• Sparse and dense binary matrices, Gaussian elimination, null spaces
//		• CSS code construction with automatic logical operators
//		• Random-window (information set) search: fast upper bounds
//		• Connected-cluster search: exact distance for sparse (LDPC) codes
//		• Matrix Market I/O with gzip, zstd and lz4 input
//		• slog logging and Prometheus metrics for long runs
//
// Under the hood, everything is organized in subpackages:
//
//	perm/       permutations in pivot and explicit form, seeded randomness
//	gf2/        dense bit matrices, echelon forms, rank, null space
//	csr/        sparse read-only matrices, syndromes
//	sparsevec/  sorted bounded index sets used by the cluster search
//	css/        Code (H, G or L), logical operators, nontriviality
//	distance/   RandomWindow, ConnectedCluster, Estimate
//	mmio/       Matrix Market reader and writer
//	promstats/  Prometheus collector for search metrics
//	cmd/distm4ri command-line driver
//
// Quick example, the [[7,1,3]] Steane code:
//
//	h, _ := csr.FromRows(7, [][]int{{0, 2, 4, 6}, {1, 2, 5, 6}, {3, 4, 5, 6}})
//	code, _ := css.NewWithDual(h, h)
//	b, _ := distance.Estimate(code, distance.MethodBoth, distance.WithSteps(100))
//	// b.Lower == b.Upper == 3
//
//	go install github.com/katalvlaran/qdist/cmd/distm4ri@latest
package qdist
