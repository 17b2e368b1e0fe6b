package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts request outcomes, refresh attempts and replays.
type Metrics struct {
	requests *prometheus.CounterVec
	refresh  *prometheus.CounterVec
	replays  prometheus.Counter
}

// NewMetrics registers the client counters with reg. A nil reg creates
// unregistered counters.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		requests: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bizadmin_client_requests_total",
			Help: "API calls by final outcome",
		}, []string{
			"outcome", // success|api_error|network_error|session_ended|invalid
		}),
		refresh: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bizadmin_client_token_refresh_total",
			Help: "Access token refresh attempts by result",
		}, []string{
			"result", // success|reused|no_token|failed
		}),
		replays: f.NewCounter(prometheus.CounterOpts{
			Name: "bizadmin_client_request_replays_total",
			Help: "Requests replayed after a token refresh",
		}),
	}
}

func (m *Metrics) observeRequest(outcome string) { m.requests.WithLabelValues(outcome).Inc() }
func (m *Metrics) observeRefresh(result string) { m.refresh.WithLabelValues(result).Inc() }
func (m *Metrics) observeReplay() { m.replays.Inc() }
