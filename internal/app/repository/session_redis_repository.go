package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/ikkim/storefront/internal/app/model"
	"github.com/ikkim/storefront/pkg/logger"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "storefront:session:"

type redisSessionRepository struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisSessionRepository stores sessions as JSON under keys that expire after ttl
func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{client: client, ttl: ttl}
}

func sessionKey(id string) string {
	return sessionKeyPrefix + id
}

func (r *redisSessionRepository) FindByID(ctx context.Context, id string) (*model.Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		logger.Error("Failed to load session from Redis", err, map[string]interface{}{
			"session_id": id,
		})
		return nil, fmt.Errorf("load session %s: %w", id, err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		logger.Warn("Discarding undecodable session", map[string]interface{}{
			"session_id": id,
			"error":      err.Error(),
		})
		return nil, ErrSessionNotFound
	}
	return &session, nil
}

func (r *redisSessionRepository) Save(ctx context.Context, session *model.Session) error {
	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session %s: %w", session.ID, err)
	}
	if err := r.client.Set(ctx, sessionKey(session.ID), data, r.ttl).Err(); err != nil {
		logger.Error("Failed to save session to Redis", err, map[string]interface{}{
			"session_id": session.ID,
		})
		return fmt.Errorf("save session %s: %w", session.ID, err)
	}
	return nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("delete session %s: %w", id, err)
	}
	return nil
}

// DeleteExpired is a no-op; Redis expires session keys itself.
func (r *redisSessionRepository) DeleteExpired(_ context.Context) (int, error) {
	return 0, nil
}

func (r *redisSessionRepository) Count(ctx context.Context) (int, error) {
	count := 0
	iter := r.client.Scan(ctx, 0, sessionKeyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		count++
	}
	if err := iter.Err(); err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return count, nil
}
