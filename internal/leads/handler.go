package leads

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	httpmiddleware "github.com/studionexa/dance-orchestrator/internal/http/middleware"
	"github.com/studionexa/dance-orchestrator/internal/tenancy"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

// Handler serves the admin lead listing.
type Handler struct {
	repo Repository
	log  *logging.Logger
}

func NewHandler(repo Repository, log *logging.Logger) *Handler {
	if log == nil {
		log = logging.Default()
	}
	return &Handler{repo: repo, log: log}
}

// List handles GET /api/admin/leads?tenant=&limit=N. A studio-scoped admin
// token pins the listing to its own studio; otherwise the tenant query
// parameter wins over the request's tenant context, and an empty tenant
// lists every studio.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 1 and 1000")
			return
		}
		limit = n
	}

	tenant := r.URL.Query().Get("tenant")
	if claims, ok := httpmiddleware.AdminClaimsFromContext(r.Context()); ok && claims.Tenant != "" {
		tenant = claims.Tenant
	} else if tenant == "" {
		tenant, _ = tenancy.TenantIDFromContext(r.Context())
	}
	items, err := h.repo.List(r.Context(), tenant, limit)
	if err != nil {
		if errors.Is(err, ErrUnavailable) {
			writeError(w, http.StatusServiceUnavailable, "lead storage is not configured")
			return
		}
		h.log.Error("lead listing failed", "tenant", tenant, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list leads")
		return
	}
	if items == nil {
		items = []Lead{}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"leads": items,
		"count": len(items),
	})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
