package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks search log delivery.
type Metrics struct {
	Recorded        prometheus.Counter
	Dropped         prometheus.Counter
	PersistFailures prometheus.Counter
}

// New registers the search log metrics.
func New() *Metrics {
	return &Metrics{
		Recorded: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_searchlog_recorded_total",
			Help: "Searches written to the search log",
		}),
		Dropped: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_searchlog_dropped_total",
			Help: "Searches dropped because the log buffer was full",
		}),
		PersistFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_searchlog_persist_failures_total",
			Help: "Search log writes that failed",
		}),
	}
}

func (m *Metrics) IncRecorded() {
	if m != nil {
		m.Recorded.Inc()
	}
}

func (m *Metrics) IncDropped() {
	if m != nil {
		m.Dropped.Inc()
	}
}

func (m *Metrics) IncPersistFailures() {
	if m != nil {
		m.PersistFailures.Inc()
	}
}
