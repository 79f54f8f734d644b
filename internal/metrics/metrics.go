// Package metrics defines Prometheus metrics for the webhook bot.
//
// All metrics are registered with the default Prometheus registry and
// served on GET /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Update results.
const (
	ResultAccepted     = "accepted"
	ResultIgnored      = "ignored"
	ResultMalformed    = "malformed"
	ResultUnauthorized = "unauthorized"
	ResultForbidden    = "forbidden"
)

// Outbound call status.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

var (
	// WebhookUpdatesTotal counts webhook requests by outcome.
	WebhookUpdatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "servicedesk_webhook_updates_total",
			Help: "Total webhook requests by result.",
		},
		[]string{"result"},
	)

	// IntentsTotal counts classified messages by intent.
	IntentsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "servicedesk_intents_total",
			Help: "Total classified messages by intent.",
		},
		[]string{"intent"},
	)

	// OutboundRequestsTotal counts Bot API calls by method and status.
	OutboundRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "servicedesk_outbound_requests_total",
			Help: "Total Telegram Bot API calls by method and status.",
		},
		[]string{"method", "status"},
	)
)

func init() {
	prometheus.MustRegister(
		WebhookUpdatesTotal,
		IntentsTotal,
		OutboundRequestsTotal,
	)
}

// RecordUpdate increments the webhook counter for result.
func RecordUpdate(result string) {
	WebhookUpdatesTotal.WithLabelValues(result).Inc()
}

// RecordIntent increments the intent counter.
func RecordIntent(intent string) {
	IntentsTotal.WithLabelValues(intent).Inc()
}

// RecordOutbound increments the outbound counter; a nil err counts as ok.
func RecordOutbound(method string, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}
	OutboundRequestsTotal.WithLabelValues(method, status).Inc()
}
