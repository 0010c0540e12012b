package dialog

import (
	"context"
	"encoding/json"
	"os"
	"sync"
	"time"

	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// TurnEvent is one processed message in the audit trail: who wrote what,
// where the state machine ended up, and the slot snapshot after the turn.
type TurnEvent struct {
	ConversationID string    `json:"conversation_id"`
	Tenant         string    `json:"tenant"`
	Text           string    `json:"text"`
	Reply          string    `json:"reply"`
	Scenario       string    `json:"scenario,omitempty"`
	Intent         string    `json:"intent"`
	Stage          string    `json:"stage"`
	Slots          Slots     `json:"slots"`
	Rule           string    `json:"rule"`
	LeadStatus     string    `json:"lead_status,omitempty"`
	At             time.Time `json:"at"`
}

// EventLogger appends turn events to a JSONL file. Failures are logged and
// swallowed; the audit trail is best-effort and must never break a turn.
type EventLogger struct {
	mu   sync.Mutex
	path string
	log  *logging.Logger
}

// NewEventLogger creates the logger. An empty path disables it.
func NewEventLogger(path string, log *logging.Logger) *EventLogger {
	if path == "" {
		return nil
	}
	if log == nil {
		log = logging.Default()
	}
	return &EventLogger{path: path, log: log}
}

// Record appends one event. Nil-safe.
func (l *EventLogger) Record(_ context.Context, ev TurnEvent) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		l.log.Error("turn log open failed", "path", l.path, "error", err)
		return
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(ev); err != nil {
		l.log.Error("turn log write failed", "path", l.path, "error", err)
	}
}
