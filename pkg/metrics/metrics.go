// Package metrics collects command metrics with the Prometheus client and
// exports them in the node_exporter textfile format.
package metrics

// DefaultBuckets are histogram buckets in seconds for command latencies. Most
// commands finish well under a millisecond; saving the data file takes longer.
var DefaultBuckets = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, 1} //nolint: gochecknoglobals, lll
