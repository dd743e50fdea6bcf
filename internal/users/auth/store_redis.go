// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/catalog/internal/platform/constants"
)

// RedisSessionRepository implements [SessionRepository] with one expiring key per session.
type RedisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository creates a new Redis-backed SessionRepository.
func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixSession + sessionID
}

// Create stores the session id with the owning user id as value.
func (repository *RedisSessionRepository) Create(ctx context.Context, sessionID, userID string, ttl time.Duration) error {
	if err := repository.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_session_create_failed: %w", err)
	}
	return nil
}

// Exists reports whether the key is still present.
func (repository *RedisSessionRepository) Exists(ctx context.Context, sessionID string) (bool, error) {
	count, err := repository.client.Exists(ctx, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("redis_session_exists_failed: %w", err)
	}
	return count == 1, nil
}

// Revoke deletes the key.
func (repository *RedisSessionRepository) Revoke(ctx context.Context, sessionID string) error {
	if err := repository.client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("redis_session_revoke_failed: %w", err)
	}
	return nil
}
