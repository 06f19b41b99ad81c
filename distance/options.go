package distance

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/qdist/internal/logging"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSteps is the number of random-window trials.
	DefaultSteps = 1
	// DefaultWMin stops the random-window search once a codeword this light is found.
	DefaultWMin = 1
	// DefaultWMax is 0: uncapped for RW; the cluster search needs an explicit value.
	DefaultWMax = 0
	// DefaultStart is -1: seed the cluster search from every column.
	DefaultStart = -1
)

// Option configures a search.
type Option func(*Options)

// Options holds the parameters shared by RandomWindow, ConnectedCluster and Estimate.
type Options struct {
	// Ctx allows cancellation; checked once per RW trial and every 4096 CC nodes.
	Ctx context.Context

	// Steps is the number of RW trials (>= 1).
	Steps int

	// WMin: RW stops once it finds a codeword of weight <= WMin.
	WMin int

	// WMax: RW keeps only codewords lighter than WMax (0 = no cap);
	// CC enumerates weights 1..WMax.
	WMax int

	// Start restricts CC to clusters whose smallest column is Start; -1 for all.
	Start int

	// Seed feeds the RW generator when Rand is nil; 0 selects perm.DefaultSeed.
	Seed int64

	// Rand, if non-nil, is used by RW instead of a seeded generator.
	// Not safe for concurrent use.
	Rand *rand.Rand

	// Trace selects diagnostic log categories.
	Trace Trace

	// Logger receives trace records; defaults to a discarding logger.
	Logger *logging.Logger

	// Metrics receives counters; defaults to NoopMetricsCollector.
	Metrics MetricsCollector

	// OnCandidate, if non-nil, is called by CC with the sorted support after
	// every column insertion. The slice is only valid during the call.
	// Returning an error aborts the search with that error.
	OnCandidate func(support []int) error
}

// DefaultOptions returns Options with:
//   - Background context
//   - one RW trial, wmin=1, no weight cap, all CC seeds
//   - default seed, no tracing, discarding logger, no-op metrics
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		Steps:   DefaultSteps,
		WMin:    DefaultWMin,
		WMax:    DefaultWMax,
		Start:   DefaultStart,
		Logger:  logging.Noop(),
		Metrics: NoopMetricsCollector{},
	}
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

// WithContext sets the cancellation context. nil is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSteps sets the number of RW trials.
func WithSteps(steps int) Option {
	return func(o *Options) { o.Steps = steps }
}

// WithWMin sets the RW early-termination weight.
func WithWMin(w int) Option {
	return func(o *Options) { o.WMin = w }
}

// WithWMax sets the RW cap and the CC weight limit.
func WithWMax(w int) Option {
	return func(o *Options) { o.WMax = w }
}

// WithStart restricts CC to a single seed column (-1 for all).
func WithStart(col int) Option {
	return func(o *Options) { o.Start = col }
}

// WithSeed sets the RW seed (0 selects the default seed).
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithRand supplies the RW generator directly.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) { o.Rand = r }
}

// WithTrace selects diagnostic log categories.
func WithTrace(t Trace) Option {
	return func(o *Options) { o.Trace = t }
}

// WithLogger installs a logger. nil is ignored.
func WithLogger(l *logging.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics installs a metrics collector. nil is ignored.
func WithMetrics(m MetricsCollector) Option {
	return func(o *Options) {
		if m != nil {
			o.Metrics = m
		}
	}
}

// WithOnCandidate installs the CC candidate hook.
func WithOnCandidate(fn func(support []int) error) Option {
	return func(o *Options) { o.OnCandidate = fn }
}
