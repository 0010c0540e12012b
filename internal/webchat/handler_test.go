package webchat

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/require"

	"github.com/studionexa/dance-orchestrator/internal/dialog"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	engine := dialog.NewEngine(dialog.Options{
		Store:        dialog.NewMemoryStore(),
		Version:      "v-test",
		QuickActions: true,
	})
	h := NewHandler(engine, "studio_nexa", nil)

	srv := httptest.NewServer(http.HandlerFunc(h.Serve))
	t.Cleanup(srv.Close)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/chat"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	_ = conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	return conn
}

func TestServeSendsSessionThenReplies(t *testing.T) {
	conn := dialTestServer(t)

	var session OutboundMessage
	require.NoError(t, conn.ReadJSON(&session))
	require.Equal(t, "session", session.Type)
	require.NotEmpty(t, session.SessionID)

	require.NoError(t, conn.WriteJSON(InboundMessage{Type: "message", Text: "хочу арендовать зал"}))

	var reply OutboundMessage
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "message", reply.Type)
	require.Equal(t, "HALL_RENT", reply.Intent)
	require.NotEmpty(t, reply.Text)
}

func TestServeAnswersPing(t *testing.T) {
	conn := dialTestServer(t)

	var session OutboundMessage
	require.NoError(t, conn.ReadJSON(&session))

	require.NoError(t, conn.WriteJSON(InboundMessage{Type: "ping"}))
	var pong OutboundMessage
	require.NoError(t, conn.ReadJSON(&pong))
	require.Equal(t, "pong", pong.Type)
}

func TestServeIgnoresEmptyMessages(t *testing.T) {
	conn := dialTestServer(t)

	var session OutboundMessage
	require.NoError(t, conn.ReadJSON(&session))

	require.NoError(t, conn.WriteJSON(InboundMessage{Type: "message", Text: "   "}))
	require.NoError(t, conn.WriteJSON(InboundMessage{Type: "message", Text: "расписание"}))

	var reply OutboundMessage
	require.NoError(t, conn.ReadJSON(&reply))
	require.Equal(t, "VIEW_SCHEDULE", reply.Intent)
}
