//go:build !qdistdebug

package sparsevec

const debugChecks = false
