//go:build qdistdebug

package distance

const debugChecks = true
