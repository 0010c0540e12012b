package router

import (
	"net/http"
	"strings"

	"github.com/studionexa/dance-orchestrator/internal/tenancy"
)

// resolveTenant places the X-Tenant-Id header's tenant into context when
// present. An absent header leaves context untouched so handlers can fall
// back to a body tenant_id or the configured default; the bot is
// single-studio by default, so a missing tenant is not an error.
func resolveTenant() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if tenant := strings.TrimSpace(r.Header.Get("X-Tenant-Id")); tenant != "" {
				r = r.WithContext(tenancy.WithTenantID(r.Context(), tenant))
			}
			next.ServeHTTP(w, r)
		})
	}
}
