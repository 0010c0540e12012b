package notify

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/studionexa/dance-orchestrator/internal/leads"
)

func TestWebhookNotifierDelivers(t *testing.T) {
	var gotBody []byte
	var gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil)
	lead := leads.New(leads.Lead{Tenant: "studio_nexa", Intent: "KIDS_GROUPS", Phone: "+79001234567"})
	n.NotifyNewLead(context.Background(), lead)

	require.Equal(t, "application/json", gotContentType)

	var event struct {
		Type    string     `json:"type"`
		Lead    leads.Lead `json:"lead"`
		Summary string     `json:"summary"`
	}
	require.NoError(t, json.Unmarshal(gotBody, &event))
	require.Equal(t, "NEW_LEAD", event.Type)
	require.Equal(t, lead.ID, event.Lead.ID)
	require.Contains(t, event.Summary, "KIDS_GROUPS")
}

func TestWebhookNotifierNoURLIsNoop(t *testing.T) {
	n := NewWebhookNotifier("", nil)
	// must not panic or block
	n.NotifyNewLead(context.Background(), leads.Lead{})
}

func TestWebhookNotifierSwallowsServerErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, nil)
	// errors are logged, never surfaced
	n.NotifyNewLead(context.Background(), leads.New(leads.Lead{Intent: "YOGA"}))
}

func TestWebhookNotifierNilSafe(t *testing.T) {
	var n *WebhookNotifier
	n.NotifyNewLead(context.Background(), leads.Lead{})
}
