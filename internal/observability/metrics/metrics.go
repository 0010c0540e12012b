// Package metrics wraps the Prometheus collectors used by the dialogue
// engine. All methods are nil-safe so wiring metrics stays optional in tests
// and one-off tooling.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	messagesTotal   *prometheus.CounterVec
	leadsTotal      *prometheus.CounterVec
	commandsTotal   *prometheus.CounterVec
	turnDuration    prometheus.Histogram
	webhookDuration prometheus.Histogram
}

// New registers the collectors on reg and returns the wrapper. Pass
// prometheus.DefaultRegisterer in production.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		messagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dialog_messages_total",
			Help: "Messages processed, labeled by resolved intent and resulting stage.",
		}, []string{"intent", "stage"}),
		leadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dialog_leads_total",
			Help: "Leads emitted, labeled by intent.",
		}, []string{"intent"}),
		commandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dialog_commands_total",
			Help: "Global commands matched, labeled by command kind.",
		}, []string{"command"}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "dialog_turn_duration_seconds",
			Help:    "End-to-end processing time of one message.",
			Buckets: prometheus.DefBuckets,
		}),
		webhookDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "lead_webhook_duration_seconds",
			Help:    "Latency of NEW_LEAD webhook deliveries.",
			Buckets: prometheus.DefBuckets,
		}),
	}
	if reg != nil {
		reg.MustRegister(m.messagesTotal, m.leadsTotal, m.commandsTotal, m.turnDuration, m.webhookDuration)
	}
	return m
}

func (m *Metrics) ObserveMessage(intent, stage string) {
	if m == nil {
		return
	}
	m.messagesTotal.WithLabelValues(intent, stage).Inc()
}

func (m *Metrics) ObserveLead(intent string) {
	if m == nil {
		return
	}
	m.leadsTotal.WithLabelValues(intent).Inc()
}

func (m *Metrics) ObserveCommand(command string) {
	if m == nil {
		return
	}
	m.commandsTotal.WithLabelValues(command).Inc()
}

func (m *Metrics) ObserveTurn(d time.Duration) {
	if m == nil {
		return
	}
	m.turnDuration.Observe(d.Seconds())
}

func (m *Metrics) ObserveWebhook(d time.Duration) {
	if m == nil {
		return
	}
	m.webhookDuration.Observe(d.Seconds())
}
