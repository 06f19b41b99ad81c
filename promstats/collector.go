package promstats

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/qdist/distance"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "qdist"

// Collector records distance-search activity as Prometheus metrics.
type Collector struct {
	trials    prometheus.Counter
	rank      prometheus.Histogram
	codewords *prometheus.CounterVec
	weight    *prometheus.GaugeVec
	nodes     *prometheus.CounterVec
	runs      *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	distance  *prometheus.GaugeVec
}

var (
	_ distance.MetricsCollector = (*Collector)(nil)
	_ prometheus.Collector      = (*Collector)(nil)
)

// New creates a Collector whose metric names start with namespace
// (DefaultNamespace if empty).
func New(namespace string) *Collector {
	if namespace == "" {
		namespace = DefaultNamespace
	}

	return &Collector{
		trials: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rw_trials_total",
			Help:      "Random-window trials completed",
		}),
		rank: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "rw_rank",
			Help:      "Rank of the check matrix observed per random-window trial",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		codewords: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "codewords_found_total",
			Help:      "Nontrivial codewords that improved a bound",
		}, []string{"method"}),
		weight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "codeword_weight",
			Help:      "Weight of the most recent improving codeword",
		}, []string{"method"}),
		nodes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cc_nodes_total",
			Help:      "Connected-cluster candidates visited, by error weight",
		}, []string{"weight"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "runs_total",
			Help:      "Completed searches",
		}, []string{"method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Wall time of one search",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method"}),
		distance: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "distance",
			Help:      "Signed distance result of the last search (negative: bound only)",
		}, []string{"method"}),
	}
}

func (c *Collector) all() []prometheus.Collector {
	return []prometheus.Collector{
		c.trials, c.rank, c.codewords, c.weight, c.nodes, c.runs, c.duration, c.distance,
	}
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	for _, m := range c.all() {
		m.Describe(ch)
	}
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	for _, m := range c.all() {
		m.Collect(ch)
	}
}

// RecordTrial implements distance.MetricsCollector.
func (c *Collector) RecordTrial(rank int) {
	c.trials.Inc()
	c.rank.Observe(float64(rank))
}

// RecordCodeword implements distance.MetricsCollector.
func (c *Collector) RecordCodeword(method distance.Method, weight int) {
	c.codewords.WithLabelValues(method.String()).Inc()
	c.weight.WithLabelValues(method.String()).Set(float64(weight))
}

// RecordLevel implements distance.MetricsCollector.
func (c *Collector) RecordLevel(weight int, nodes int64) {
	c.nodes.WithLabelValues(strconv.Itoa(weight)).Add(float64(nodes))
}

// RecordRun implements distance.MetricsCollector.
func (c *Collector) RecordRun(method distance.Method, dist int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	c.runs.WithLabelValues(method.String(), status).Inc()
	c.duration.WithLabelValues(method.String()).Observe(d.Seconds())
	c.distance.WithLabelValues(method.String()).Set(float64(dist))
}
