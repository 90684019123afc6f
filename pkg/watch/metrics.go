package watch

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is a struct that contains all metrics for the watcher
type Metrics struct {
	syncsTotal        *prometheus.CounterVec
	syncDuration      prometheus.Histogram
	snapshotPaths     prometheus.Gauge
	softFailuresTotal prometheus.Counter
}

// NewMetrics creates a new Metrics struct with initialized Prometheus metrics
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &Metrics{
		syncsTotal: promauto.With(registerer).NewCounterVec(
			prometheus.CounterOpts{
				Name: "globby_watch_syncs_total",
				Help: "The total number of sync attempts",
			},
			[]string{"outcome"},
		),
		syncDuration: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Name:    "globby_watch_sync_duration_seconds",
			Help:    "The duration of full re-listings in seconds",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 12), // From 1ms to ~4s
		}),
		snapshotPaths: promauto.With(registerer).NewGauge(prometheus.GaugeOpts{
			Name: "globby_watch_snapshot_paths",
			Help: "Number of paths in the most recent snapshot",
		}),
		softFailuresTotal: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Name: "globby_watch_list_soft_failures_total",
			Help: "The total number of directories and links skipped as unreadable",
		}),
	}
}

// RecordSync records a completed sync and its snapshot size
func (m *Metrics) RecordSync(paths int, softFailures uint64, duration time.Duration) {
	m.syncsTotal.WithLabelValues("success").Inc()
	m.syncDuration.Observe(duration.Seconds())
	m.snapshotPaths.Set(float64(paths))
	m.softFailuresTotal.Add(float64(softFailures))
}

// RecordSyncFailure records a sync that produced no snapshot
func (m *Metrics) RecordSyncFailure() {
	m.syncsTotal.WithLabelValues("failure").Inc()
}

// RegisterMetricsHandler registers the metrics HTTP handler
func RegisterMetricsHandler(mux *http.ServeMux, gatherer prometheus.Gatherer) {
	if gatherer == nil {
		mux.Handle("/metrics", promhttp.Handler())
		return
	}
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
}
