package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	m.ObserveMessage("GENERAL", "idle")
	m.ObserveLead("HALL_RENT")
	m.ObserveCommand("reset")
	m.ObserveTurn(time.Millisecond)
	m.ObserveWebhook(time.Millisecond)
}

func TestCountersIncrement(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := New(reg)

	m.ObserveMessage("KIDS_GROUPS", "ask_kid_age")
	m.ObserveMessage("KIDS_GROUPS", "ask_kid_age")
	m.ObserveLead("KIDS_GROUPS")
	m.ObserveCommand("schedule")

	if got := testutil.ToFloat64(m.messagesTotal.WithLabelValues("KIDS_GROUPS", "ask_kid_age")); got != 2 {
		t.Fatalf("expected 2 messages, got %v", got)
	}
	if got := testutil.ToFloat64(m.leadsTotal.WithLabelValues("KIDS_GROUPS")); got != 1 {
		t.Fatalf("expected 1 lead, got %v", got)
	}
	if got := testutil.ToFloat64(m.commandsTotal.WithLabelValues("schedule")); got != 1 {
		t.Fatalf("expected 1 command, got %v", got)
	}
}
