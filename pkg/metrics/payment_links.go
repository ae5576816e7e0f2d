package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PaymentLinkMetrics records metadata for payment-link operations.
type PaymentLinkMetrics struct {
	renderDuration *prometheus.HistogramVec
	initiations    *prometheus.CounterVec
	guardRejects   *prometheus.CounterVec
}

// NewPaymentLinkMetrics registers the payment-link metrics on the provided registerer.
func NewPaymentLinkMetrics(reg prometheus.Registerer) *PaymentLinkMetrics {
	if reg == nil {
		return &PaymentLinkMetrics{}
	}
	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "payment_link_render_duration_seconds",
		Help:    "Duration of payment-link render flows in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
	initiations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_link_initiations",
		Help: "Payment-link initiation attempts by outcome.",
	}, []string{"outcome"})
	guardRejects := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "payment_link_guard_rejections",
		Help: "Link initiations rejected by the payment-status guard.",
	}, []string{"status"})
	reg.MustRegister(renderDuration, initiations, guardRejects)
	return &PaymentLinkMetrics{
		renderDuration: renderDuration,
		initiations:    initiations,
		guardRejects:   guardRejects,
	}
}

// ObserveRenderDuration records the duration of the named operation.
func (m *PaymentLinkMetrics) ObserveRenderDuration(operation string, duration time.Duration) {
	if m == nil || m.renderDuration == nil {
		return
	}
	m.renderDuration.WithLabelValues(normalizeLabel(operation)).Observe(duration.Seconds())
}

// IncInitiation increments the initiation counter for the given outcome.
func (m *PaymentLinkMetrics) IncInitiation(outcome string) {
	if m == nil || m.initiations == nil {
		return
	}
	m.initiations.WithLabelValues(normalizeLabel(outcome)).Inc()
}

// IncGuardRejection increments the guard rejection counter for the status.
func (m *PaymentLinkMetrics) IncGuardRejection(status string) {
	if m == nil || m.guardRejects == nil {
		return
	}
	m.guardRejects.WithLabelValues(normalizeLabel(status)).Inc()
}

func normalizeLabel(value string) string {
	if value == "" {
		return "unknown"
	}
	return value
}
