package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/studionexa/dance-orchestrator/internal/dialog"
	"github.com/studionexa/dance-orchestrator/internal/leads"
)

func newTestRouter(t *testing.T) (http.Handler, *leads.MemoryRepository) {
	t.Helper()
	repo := leads.NewMemoryRepository()
	engine := dialog.NewEngine(dialog.Options{
		Store:        dialog.NewMemoryStore(),
		Emitter:      leads.NewEmitter("", repo, nil, nil, nil),
		Version:      "v-test",
		QuickActions: true,
	})
	handler := New(&Config{
		DialogHandler:   dialog.NewHandler(engine, false, "studio_nexa", nil),
		LeadsHandler:    leads.NewHandler(repo, nil),
		AdminAuthSecret: "secret",
	})
	return handler, repo
}

func TestRouterHealth(t *testing.T) {
	r, _ := newTestRouter(t)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestRouterMessageFlow(t *testing.T) {
	r, _ := newTestRouter(t)

	body := []byte(`{"text": "хочу арендовать зал", "chat_id": "r1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "HALL_RENT", resp["intent"])
	require.NotEmpty(t, resp["reply"])
}

func TestRouterTenantHeaderReachesLead(t *testing.T) {
	r, repo := newTestRouter(t)

	send := func(text string) {
		body, _ := json.Marshal(map[string]any{"text": text, "chat_id": "t1"})
		req := httptest.NewRequest(http.MethodPost, "/api/message", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-Tenant-Id", "branch_two")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	send("хочу арендовать зал")
	send("05.12 18:00")
	send("тренировка на 5 человек")

	stored, err := repo.List(context.Background(), "branch_two", 10)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	require.Equal(t, "branch_two", stored[0].Tenant)
}

func TestRouterAdminRequiresJWT(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	claims := jwt.RegisteredClaims{
		Subject:   "studio-admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}

func TestResolveTenantDefault(t *testing.T) {
	r, _ := newTestRouter(t)

	// no X-Tenant-Id header falls back to the default tenant
	body := []byte(`{"text": "привет", "chat_id": "d1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/message", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
}
