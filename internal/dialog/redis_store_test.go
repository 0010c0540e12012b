package dialog

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client, time.Hour), mr
}

func TestRedisStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	got, err := store.Get(ctx, "chat-1")
	require.NoError(t, err)
	require.Nil(t, got)

	sess := NewSession("studio_nexa")
	sess.Scenario = ScenarioKids
	sess.ActiveIntent = IntentKids
	sess.Stage = StageAskKidAge
	sess.Slots.Age = 7
	require.NoError(t, store.Save(ctx, "chat-1", sess))

	got, err = store.Get(ctx, "chat-1")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, ScenarioKids, got.Scenario)
	require.Equal(t, IntentKids, got.ActiveIntent)
	require.Equal(t, StageAskKidAge, got.Stage)
	require.Equal(t, 7, got.Slots.Age)

	ttl := mr.TTL("session:chat-1")
	require.Greater(t, ttl, time.Duration(0))

	require.NoError(t, store.Delete(ctx, "chat-1"))
	got, err = store.Get(ctx, "chat-1")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisStoreExpiredSession(t *testing.T) {
	ctx := context.Background()
	store, mr := newTestRedisStore(t)

	require.NoError(t, store.Save(ctx, "chat-2", NewSession("studio_nexa")))
	mr.FastForward(2 * time.Hour)

	got, err := store.Get(ctx, "chat-2")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestRedisStoreRequiresConversationID(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestRedisStore(t)

	_, err := store.Get(ctx, "")
	require.Error(t, err)
	require.Error(t, store.Save(ctx, "", NewSession("studio_nexa")))
}

func TestRedisStoreNilSafe(t *testing.T) {
	var store *RedisStore
	ctx := context.Background()

	got, err := store.Get(ctx, "chat-3")
	require.NoError(t, err)
	require.Nil(t, got)
	require.NoError(t, store.Save(ctx, "chat-3", NewSession("t")))
	require.NoError(t, store.Delete(ctx, "chat-3"))
}
