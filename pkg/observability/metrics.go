// Package observability exposes Prometheus instrumentation for the search
// core: search outcomes, upstream fetch results, and cache effectiveness.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the collectors shared across the application
type Metrics struct {
	SearchesTotal     *prometheus.CounterVec
	SearchDuration    prometheus.Histogram
	LinkFetchesTotal  *prometheus.CounterVec
	CacheLookupsTotal *prometheus.CounterVec
}

// NewMetrics registers and returns the application metrics
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SearchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikisolver",
			Name:      "searches_total",
			Help:      "Path searches by terminal outcome (found, exhausted, timeout, error).",
		}, []string{"outcome"}),
		SearchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "wikisolver",
			Name:      "search_duration_seconds",
			Help:      "Wall-clock duration of path searches.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 10),
		}),
		LinkFetchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikisolver",
			Name:      "link_fetches_total",
			Help:      "Upstream link fetches by result (ok, error).",
		}, []string{"result"}),
		CacheLookupsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "wikisolver",
			Name:      "link_cache_lookups_total",
			Help:      "Link cache lookups by result (hit, miss).",
		}, []string{"result"}),
	}
}

// ObserveSearch records one finished search
func (m *Metrics) ObserveSearch(outcome string, seconds float64) {
	m.SearchesTotal.WithLabelValues(outcome).Inc()
	m.SearchDuration.Observe(seconds)
}
