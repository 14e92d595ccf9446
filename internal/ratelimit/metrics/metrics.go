package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SearchAllowed  prometheus.Counter
	SearchRejected prometheus.Counter
	CheckFailures  prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		SearchAllowed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_ratelimit_search_allowed_total",
			Help: "Total number of search requests admitted by the rate limiter",
		}),
		SearchRejected: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_ratelimit_search_rejected_total",
			Help: "Total number of search requests rejected with 429",
		}),
		CheckFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "udaan_ratelimit_check_failures_total",
			Help: "Total number of rate limit checks that errored and failed open",
		}),
	}
}

func (m *Metrics) IncrementAllowed() {
	if m == nil {
		return
	}
	m.SearchAllowed.Inc()
}

func (m *Metrics) IncrementRejected() {
	if m == nil {
		return
	}
	m.SearchRejected.Inc()
}

func (m *Metrics) IncrementCheckFailures() {
	if m == nil {
		return
	}
	m.CheckFailures.Inc()
}
