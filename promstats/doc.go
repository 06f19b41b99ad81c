// Package promstats exports distance-search counters to Prometheus.
//
// Collector implements both distance.MetricsCollector (install it with
// distance.WithMetrics) and prometheus.Collector (register it with any
// prometheus.Registerer). A command-line run can dump the registry with
// prometheus.WriteToTextfile for the node_exporter textfile collector.
package promstats
