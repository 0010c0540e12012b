package dialog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

const sessionKeyPrefix = "session:"

// RedisStore persists sessions in Redis with a sliding TTL, so a conversation
// resumes after a process restart but stale state ages out on its own.
type RedisStore struct {
	redis  *redis.Client
	tracer trace.Tracer
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed session store. A nil client yields a
// nil store, which callers treat as "backend unavailable".
func NewRedisStore(redisClient *redis.Client, ttl time.Duration) *RedisStore {
	if redisClient == nil {
		return nil
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStore{
		redis:  redisClient,
		tracer: otel.Tracer("studio.internal.dialog.session_store"),
		ttl:    ttl,
	}
}

func sessionKey(conversationID string) string {
	return sessionKeyPrefix + conversationID
}

// Get loads a session; (nil, nil) when none exists.
func (s *RedisStore) Get(ctx context.Context, conversationID string) (*Session, error) {
	if s == nil || s.redis == nil {
		return nil, nil
	}
	if conversationID == "" {
		return nil, errors.New("dialog: session conversationID required")
	}

	ctx, span := s.tracer.Start(ctx, "dialog.session.get")
	defer span.End()

	raw, err := s.redis.Get(ctx, sessionKey(conversationID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("dialog: load session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(raw, &sess); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("dialog: decode session: %w", err)
	}
	return &sess, nil
}

// Save stores the session and refreshes its TTL.
func (s *RedisStore) Save(ctx context.Context, conversationID string, session *Session) error {
	if s == nil || s.redis == nil {
		return nil
	}
	if conversationID == "" {
		return errors.New("dialog: session conversationID required")
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("dialog: encode session: %w", err)
	}

	ctx, span := s.tracer.Start(ctx, "dialog.session.save")
	defer span.End()

	if err := s.redis.Set(ctx, sessionKey(conversationID), data, s.ttl).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("dialog: save session: %w", err)
	}
	return nil
}

// Delete removes the session.
func (s *RedisStore) Delete(ctx context.Context, conversationID string) error {
	if s == nil || s.redis == nil {
		return nil
	}

	ctx, span := s.tracer.Start(ctx, "dialog.session.delete")
	defer span.End()

	if err := s.redis.Del(ctx, sessionKey(conversationID)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("dialog: delete session: %w", err)
	}
	return nil
}
