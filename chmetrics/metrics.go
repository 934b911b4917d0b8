package chmetrics

import (
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is the package's instrumentation container. Construct with Init;
// Get lazily builds a default instance if Init was never called, so callers
// that don't care about metrics never need to.
type Metrics struct {
	QueryDuration        *prometheus.HistogramVec
	QueriesTotal         *prometheus.CounterVec
	StallPrunesTotal     prometheus.Counter
	ContractionRounds    prometheus.Counter
	ContractionShortcuts prometheus.Counter
	DatasetGeneration    prometheus.Gauge
}

var (
	mu      sync.Mutex
	current *Metrics
)

// Init registers the package's collectors against the global
// prometheus.DefaultRegisterer under the given namespace/subsystem and
// installs the result as the package default. Safe to call once per process; calling it
// twice against the default global registry would panic on duplicate
// registration, so tests construct their own *prometheus.Registry via
// InitWithRegistry instead.
func Init(namespace, subsystem string) *Metrics {
	return InitWithRegistry(prometheus.DefaultRegisterer, namespace, subsystem)
}

// InitWithRegistry is Init against an explicit registerer, letting tests
// pass prometheus.NewRegistry() to avoid colliding with the global default.
func InitWithRegistry(reg prometheus.Registerer, namespace, subsystem string) *Metrics {
	factory := promauto.With(reg)

	m := &Metrics{
		QueryDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "query_duration_seconds",
				Help:      "Duration of a bidirectional CH query, by outcome",
				Buckets:   []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1},
			},
			[]string{"outcome"},
		),
		QueriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "queries_total",
				Help:      "Total number of viaroute queries, by outcome",
			},
			[]string{"outcome"},
		),
		StallPrunesTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "stall_on_demand_prunes_total",
				Help:      "Total number of node expansions skipped by stall-on-demand",
			},
		),
		ContractionRounds: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "contraction_rounds_total",
				Help:      "Total number of independent-set contraction rounds completed",
			},
		),
		ContractionShortcuts: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "contraction_shortcuts_total",
				Help:      "Total number of shortcut edges inserted during contraction",
			},
		),
		DatasetGeneration: factory.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "dataset_generation",
				Help:      "Sequence number of the currently active shared-memory generation",
			},
		),
	}

	mu.Lock()
	current = m
	mu.Unlock()
	return m
}

// Get returns the package-default Metrics, constructing a no-op-registry
// instance on first use if Init was never called.
func Get() *Metrics {
	mu.Lock()
	m := current
	mu.Unlock()
	if m == nil {
		return InitWithRegistry(prometheus.NewRegistry(), "chway", "")
	}
	return m
}

// RecordQuery records one viaroute query's outcome and latency.
func (m *Metrics) RecordQuery(outcome string, d time.Duration) {
	m.QueriesTotal.WithLabelValues(outcome).Inc()
	m.QueryDuration.WithLabelValues(outcome).Observe(d.Seconds())
}

// RecordStallPrune increments the stall-on-demand prune counter.
func (m *Metrics) RecordStallPrune() { m.StallPrunesTotal.Inc() }

// RecordContractionRound records one completed independent-set round and
// the number of shortcuts it inserted.
func (m *Metrics) RecordContractionRound(shortcuts int) {
	m.ContractionRounds.Inc()
	m.ContractionShortcuts.Add(float64(shortcuts))
}

// SetDatasetGeneration publishes the currently active shm.Region generation
// sequence number.
func (m *Metrics) SetDatasetGeneration(seq uint64) { m.DatasetGeneration.Set(float64(seq)) }
