// Package notify delivers outbound notifications about dialogue outcomes.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/studionexa/dance-orchestrator/internal/leads"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// WebhookNotifier POSTs a NEW_LEAD event to a configured URL. With an empty
// URL every call is a no-op, so callers never need to branch on config.
type WebhookNotifier struct {
	url    string
	client *http.Client
	log    *logging.Logger
}

func NewWebhookNotifier(url string, log *logging.Logger) *WebhookNotifier {
	if log == nil {
		log = logging.Default()
	}
	return &WebhookNotifier{
		url:    url,
		client: &http.Client{Timeout: 10 * time.Second},
		log:    log,
	}
}

type webhookEvent struct {
	Type    string     `json:"type"`
	Lead    leads.Lead `json:"lead"`
	Summary string     `json:"summary"`
}

// NotifyNewLead delivers the event. Failures are logged, never returned: the
// webhook is best-effort by contract.
func (n *WebhookNotifier) NotifyNewLead(ctx context.Context, lead leads.Lead) {
	if n == nil || n.url == "" {
		return
	}

	body, err := json.Marshal(webhookEvent{Type: "NEW_LEAD", Lead: lead, Summary: lead.Summary()})
	if err != nil {
		n.log.Error("webhook payload encode failed", "lead_id", lead.ID, "error", err)
		return
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		n.log.Error("webhook request build failed", "lead_id", lead.ID, "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		n.log.Error("webhook delivery failed", "lead_id", lead.ID, "error", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		n.log.Error("webhook rejected", "lead_id", lead.ID, "status", resp.StatusCode)
		return
	}
	n.log.Info("webhook delivered", "lead_id", lead.ID, "status", resp.StatusCode)
}
