//go:build !qdistdebug

package distance

const debugChecks = false
