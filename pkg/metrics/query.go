package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Resultados posibles de una operación contra el almacén.
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeDegraded = "degraded"
	OutcomeConflict = "conflict"
)

// QueryMetrics registra duración y resultado de cada operación del despachador.
// Un *QueryMetrics nil es válido y no registra nada.
type QueryMetrics struct {
	duration *prometheus.HistogramVec
	total    *prometheus.CounterVec
}

// NewQueryMetrics registra las métricas en el registerer indicado.
func NewQueryMetrics(reg prometheus.Registerer) *QueryMetrics {
	if reg == nil {
		return &QueryMetrics{}
	}
	duration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "gateway_query_duration_seconds",
		Help:    "Duration of data store operations in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	total := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "gateway_query_total",
		Help: "Data store operations by outcome.",
	}, []string{"operation", "outcome"})
	reg.MustRegister(duration, total)
	return &QueryMetrics{duration: duration, total: total}
}

// Observe registra una ejecución de la operación con su resultado.
func (m *QueryMetrics) Observe(operation, outcome string, elapsed time.Duration) {
	if m == nil || m.total == nil {
		return
	}
	op := normalizeLabel(operation)
	m.duration.WithLabelValues(op).Observe(elapsed.Seconds())
	m.total.WithLabelValues(op, outcome).Inc()
}

func normalizeLabel(op string) string {
	if op == "" {
		return "unknown"
	}
	return op
}
