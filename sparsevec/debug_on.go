//go:build qdistdebug

package sparsevec

const debugChecks = true
