package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for registry search.
type Metrics struct {
	SearchesTotal  *prometheus.CounterVec
	SearchDuration *prometheus.HistogramVec
	SearchResults  *prometheus.HistogramVec
	CacheHits      *prometheus.CounterVec
	CacheMisses    *prometheus.CounterVec
}

// New creates the registry metrics.
func New() *Metrics {
	return &Metrics{
		SearchesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udaan_registry_searches_total",
			Help: "Registry searches by category (general for cross-registry search)",
		}, []string{"category"}),
		SearchDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "udaan_registry_search_duration_seconds",
			Help:    "Duration of registry searches",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}, []string{"category"}),
		SearchResults: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "udaan_registry_search_results",
			Help:    "Result cards returned per search",
			Buckets: []float64{0, 1, 5, 10, 20, 40},
		}, []string{"category"}),
		CacheHits: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udaan_registry_cache_hits_total",
			Help: "Record detail cache hits by category",
		}, []string{"category"}),
		CacheMisses: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udaan_registry_cache_misses_total",
			Help: "Record detail cache misses by category",
		}, []string{"category"}),
	}
}

// ObserveSearch records a completed search that started at start.
func (m *Metrics) ObserveSearch(category string, start time.Time, results int) {
	if m == nil {
		return
	}
	m.SearchesTotal.WithLabelValues(category).Inc()
	m.SearchDuration.WithLabelValues(category).Observe(time.Since(start).Seconds())
	m.SearchResults.WithLabelValues(category).Observe(float64(results))
}

func (m *Metrics) RecordCacheHit(category string) {
	if m == nil {
		return
	}
	m.CacheHits.WithLabelValues(category).Inc()
}

func (m *Metrics) RecordCacheMiss(category string) {
	if m == nil {
		return
	}
	m.CacheMisses.WithLabelValues(category).Inc()
}
