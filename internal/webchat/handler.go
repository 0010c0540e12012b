// Package webchat bridges the browser chat widget onto the dialogue engine
// over a WebSocket connection.
package webchat

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/studionexa/dance-orchestrator/internal/dialog"
	"github.com/studionexa/dance-orchestrator/internal/tenancy"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Handler manages web chat connections.
type Handler struct {
	engine        *dialog.Engine
	defaultTenant string
	logger        *logging.Logger
	upgrader      websocket.Upgrader
}

// InboundMessage is what the widget sends.
type InboundMessage struct {
	Type     string `json:"type"` // "message", "ping"
	Text     string `json:"text"`
	Scenario string `json:"scenario,omitempty"`
}

// OutboundMessage is what we send to the widget.
type OutboundMessage struct {
	Type         string   `json:"type"` // "message", "session", "pong", "error"
	Text         string   `json:"text,omitempty"`
	Intent       string   `json:"intent,omitempty"`
	QuickActions []string `json:"quick_actions,omitempty"`
	SessionID    string   `json:"session_id,omitempty"`
	Timestamp    string   `json:"timestamp,omitempty"`
}

func NewHandler(engine *dialog.Engine, defaultTenant string, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		engine:        engine,
		defaultTenant: defaultTenant,
		logger:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the widget is embedded on arbitrary studio pages
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// generateSessionID creates a random session identifier.
func generateSessionID() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return uuid.New().String()
	}
	return hex.EncodeToString(b)
}

// Serve upgrades GET /ws/chat and relays messages to the engine. Each reply
// is produced synchronously, so the loop sends it straight back.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Error("webchat: upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	sessionID := r.URL.Query().Get("session")
	if sessionID == "" {
		sessionID = generateSessionID()
	}
	tenant, ok := tenancy.TenantIDFromContext(r.Context())
	if !ok {
		tenant = h.defaultTenant
	}
	convID := "webchat:" + tenant + ":" + sessionID

	_ = conn.WriteJSON(OutboundMessage{Type: "session", SessionID: sessionID})
	h.logger.Info("webchat: connection opened", "tenant", tenant, "session_id", sessionID)

	for {
		var msg InboundMessage
		if err := conn.ReadJSON(&msg); err != nil {
			h.logger.Debug("webchat: connection closed", "session_id", sessionID, "error", err)
			return
		}

		if msg.Type == "ping" {
			_ = conn.WriteJSON(OutboundMessage{Type: "pong"})
			continue
		}
		if msg.Type != "message" || strings.TrimSpace(msg.Text) == "" {
			continue
		}

		result, err := h.engine.Process(r.Context(), dialog.Request{
			ConversationID: convID,
			Tenant:         tenant,
			Text:           msg.Text,
			Scenario:       msg.Scenario,
		})
		if err != nil {
			h.logger.Error("webchat: message processing failed", "session_id", sessionID, "error", err)
			_ = conn.WriteJSON(OutboundMessage{Type: "error", Text: "Что-то пошло не так, попробуйте ещё раз."})
			continue
		}

		_ = conn.WriteJSON(OutboundMessage{
			Type:         "message",
			Text:         result.Reply,
			Intent:       string(result.Intent),
			QuickActions: result.QuickActions,
			SessionID:    sessionID,
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
		})
	}
}
