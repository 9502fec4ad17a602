package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	TransfersCompleted prometheus.Counter
	TransfersRejected  *prometheus.CounterVec
	OracleRequests     *prometheus.CounterVec
}

// New creates all metrics and registers them with the given registerer.
func New(reg prometheus.Registerer) *Metrics {
	return &Metrics{
		TransfersCompleted: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "registry_transfers_completed_total",
			Help: "Total number of ownership transfers committed to the ledger",
		}),
		TransfersRejected: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "registry_transfers_rejected_total",
			Help: "Total number of transfers rejected, by reason",
		}, []string{"reason"}),
		OracleRequests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "registry_oracle_requests_total",
			Help: "Total number of verification oracle requests, by mode and outcome",
		}, []string{"mode", "outcome"}),
	}
}

// TransferCompleted increments the committed transfer counter by 1.
func (m *Metrics) TransferCompleted() {
	m.TransfersCompleted.Inc()
}

// TransferRejected increments the rejected transfer counter for a reason.
func (m *Metrics) TransferRejected(reason string) {
	m.TransfersRejected.WithLabelValues(reason).Inc()
}

// OracleRequest records one oracle call with its mode and outcome.
func (m *Metrics) OracleRequest(mode, outcome string) {
	m.OracleRequests.WithLabelValues(mode, outcome).Inc()
}
