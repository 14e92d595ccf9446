package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks unified pipeline runs.
type Metrics struct {
	RecordsFetched   *prometheus.CounterVec
	RecordsPersisted prometheus.Counter
	RunsTotal        *prometheus.CounterVec
	RunDuration      prometheus.Histogram
}

// New registers the unified pipeline metrics.
func New() *Metrics {
	return &Metrics{
		RecordsFetched: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udaan_unified_records_fetched_total",
			Help: "Source rows fetched by the unified pipeline, by source",
		}, []string{"source"}),
		RecordsPersisted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_unified_records_persisted_total",
			Help: "Unified records upserted",
		}),
		RunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "udaan_unified_runs_total",
			Help: "Unified pipeline runs by outcome",
		}, []string{"outcome"}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "udaan_unified_run_duration_seconds",
			Help:    "Duration of a full unified pipeline run",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60},
		}),
	}
}

func (m *Metrics) AddFetched(source string, n int) {
	if m == nil {
		return
	}
	m.RecordsFetched.WithLabelValues(source).Add(float64(n))
}

func (m *Metrics) AddPersisted(n int) {
	if m == nil {
		return
	}
	m.RecordsPersisted.Add(float64(n))
}

// ObserveRun records the outcome and duration of a run started at start.
func (m *Metrics) ObserveRun(start time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.RunsTotal.WithLabelValues(outcome).Inc()
	m.RunDuration.Observe(time.Since(start).Seconds())
}
