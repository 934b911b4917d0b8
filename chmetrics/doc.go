// Package chmetrics exposes optional Prometheus instrumentation around
// query and contraction: counters/histograms for query latency,
// stall-on-demand prunes, and contraction rounds.
//
// The dependency is real but optional: Get returns a usable *Metrics even
// if Init was never called (a package-level default), and every recording
// method is a cheap label-lookup-plus-increment so instrumenting a hot path
// (chquery's stall check, contractor's per-round loop) costs one atomic op.
package chmetrics
