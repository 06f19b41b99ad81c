package distance

import (
	"sync"
	"sync/atomic"
	"time"
)

// MetricsCollector receives counters from the search engines.
// Implement it to integrate with a monitoring system; see package promstats
// for a Prometheus implementation.
type MetricsCollector interface {
	// RecordTrial is called after each RW trial with the rank of H.
	RecordTrial(rank int)

	// RecordCodeword is called whenever a search finds a nontrivial codeword
	// that improves its bound.
	RecordCodeword(method Method, weight int)

	// RecordLevel is called when CC finishes (or leaves) one weight level,
	// with the number of candidates visited at that level.
	RecordLevel(weight int, nodes int64)

	// RecordRun is called once per search with its signed result.
	RecordRun(method Method, distance int, duration time.Duration, err error)
}

// NoopMetricsCollector discards everything.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordTrial(int)                             {}
func (NoopMetricsCollector) RecordCodeword(Method, int)                  {}
func (NoopMetricsCollector) RecordLevel(int, int64)                      {}
func (NoopMetricsCollector) RecordRun(Method, int, time.Duration, error) {}

// BasicMetricsCollector keeps simple in-memory counters.
type BasicMetricsCollector struct {
	Trials     atomic.Int64
	RankSum    atomic.Int64
	Codewords  atomic.Int64
	Nodes      atomic.Int64
	Runs       atomic.Int64
	RunErrors  atomic.Int64
	TotalNanos atomic.Int64

	mu         sync.Mutex
	nodesByW   map[int]int64
	lightestCW int
}

// RecordTrial implements MetricsCollector.
func (b *BasicMetricsCollector) RecordTrial(rank int) {
	b.Trials.Add(1)
	b.RankSum.Add(int64(rank))
}

// RecordCodeword implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCodeword(_ Method, weight int) {
	b.Codewords.Add(1)
	b.mu.Lock()
	if b.lightestCW == 0 || weight < b.lightestCW {
		b.lightestCW = weight
	}
	b.mu.Unlock()
}

// RecordLevel implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLevel(weight int, nodes int64) {
	b.Nodes.Add(nodes)
	b.mu.Lock()
	if b.nodesByW == nil {
		b.nodesByW = make(map[int]int64)
	}
	b.nodesByW[weight] += nodes
	b.mu.Unlock()
}

// RecordRun implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRun(_ Method, _ int, duration time.Duration, err error) {
	b.Runs.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.RunErrors.Add(1)
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	Trials        int64
	AvgRank       float64
	Codewords     int64
	LightestCW    int
	Nodes         int64
	NodesByWeight map[int]int64
	Runs          int64
	RunErrors     int64
	AvgRunNanos   int64
}

// GetStats returns a snapshot of the current counters.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	s := BasicMetricsStats{
		Trials:    b.Trials.Load(),
		Codewords: b.Codewords.Load(),
		Nodes:     b.Nodes.Load(),
		Runs:      b.Runs.Load(),
		RunErrors: b.RunErrors.Load(),
	}
	if s.Trials > 0 {
		s.AvgRank = float64(b.RankSum.Load()) / float64(s.Trials)
	}
	if s.Runs > 0 {
		s.AvgRunNanos = b.TotalNanos.Load() / s.Runs
	}
	b.mu.Lock()
	s.LightestCW = b.lightestCW
	s.NodesByWeight = make(map[int]int64, len(b.nodesByW))
	for w, c := range b.nodesByW {
		s.NodesByWeight[w] = c
	}
	b.mu.Unlock()

	return s
}
