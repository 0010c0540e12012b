package dialog

import (
	"encoding/json"
	"net/http"

	"github.com/studionexa/dance-orchestrator/internal/tenancy"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Handler exposes the engine over HTTP.
type Handler struct {
	engine        *Engine
	strict        bool
	defaultTenant string
	log           *logging.Logger
}

func NewHandler(engine *Engine, strict bool, defaultTenant string, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Default()
	}
	return &Handler{engine: engine, strict: strict, defaultTenant: defaultTenant, log: log}
}

// messageRequest accepts the loose field aliases legacy clients send.
type messageRequest struct {
	Text     string `json:"text"`
	Message  string `json:"message"`
	Scenario string `json:"scenario"`
	ChatID   string `json:"chat_id"`
	UserID   string `json:"user_id"`
	TenantID string `json:"tenant_id"`
	Meta     struct {
		ChatID   string `json:"chat_id"`
		Scenario string `json:"scenario"`
	} `json:"meta"`
}

func (r messageRequest) text() string {
	if r.Text != "" {
		return r.Text
	}
	return r.Message
}

func (r messageRequest) scenario() string {
	if r.Scenario != "" {
		return r.Scenario
	}
	return r.Meta.Scenario
}

// conversationID resolves the client identifier: chat_id, then meta.chat_id,
// then user_id, then a shared default bucket.
func (r messageRequest) conversationID() string {
	for _, id := range []string{r.ChatID, r.Meta.ChatID, r.UserID} {
		if id != "" {
			return id
		}
	}
	return "default"
}

type slotsPayload struct {
	Phone string `json:"phone"`
	Age   int    `json:"age"`
}

// messageResponse duplicates the reply under three keys; clients read
// whichever their generation of the simulator expects.
type messageResponse struct {
	Reply        string       `json:"reply"`
	Text         string       `json:"text"`
	Response     string       `json:"response"`
	Intent       string       `json:"intent"`
	Slots        slotsPayload `json:"slots"`
	QuickActions []string     `json:"quick_actions,omitempty"`
	Debug        *Debug       `json:"_debug,omitempty"`
	LeadStatus   string       `json:"lead_status,omitempty"`
	Version      string       `json:"version,omitempty"`
}

// Message handles POST /api/message.
func (h *Handler) Message(w http.ResponseWriter, r *http.Request) {
	var req messageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if h.strict && (req.text() == "" || req.scenario() == "") {
		h.writeError(w, http.StatusBadRequest, "text and scenario are required")
		return
	}

	tenant, ok := tenancy.TenantIDFromContext(r.Context())
	if !ok {
		tenant = req.TenantID
	}
	if tenant == "" {
		tenant = h.defaultTenant
	}

	result, err := h.engine.Process(r.Context(), Request{
		ConversationID: req.conversationID(),
		Tenant:         tenant,
		Text:           req.text(),
		Scenario:       req.scenario(),
	})
	if err != nil {
		h.log.Error("message processing failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, "failed to process message")
		return
	}

	h.writeJSON(w, http.StatusOK, toResponse(result))
}

func toResponse(result *Result) messageResponse {
	return messageResponse{
		Reply:        result.Reply,
		Text:         result.Reply,
		Response:     result.Reply,
		Intent:       string(result.Intent),
		Slots:        slotsPayload{Phone: result.Slots.Phone, Age: result.Slots.Age},
		QuickActions: result.QuickActions,
		Debug:        &result.Debug,
		LeadStatus:   result.LeadStatus,
		Version:      result.Version,
	}
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "dance-orchestrator",
		"version": h.engine.version,
	})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.log.Error("response encode failed", "error", err)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	h.writeJSON(w, status, map[string]string{"error": msg})
}
