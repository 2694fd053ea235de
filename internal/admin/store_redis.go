// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package admin

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/videoventa-mx/videoventa/internal/platform/constants"
)

// RedisSessionStore is the Redis-backed implementation of [SessionStore].
//
// Each session is one key with a TTL; Redis expiry is the session expiry, so
// there is no sweeper to run.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func sessionKey(sessionID string) string {
	return constants.RedisPrefixAdminSession + sessionID
}

func (store *RedisSessionStore) Put(context context.Context, sessionID string) error {
	err := store.client.Set(context, sessionKey(sessionID), "1", constants.AdminSessionTTL).Err()
	if err != nil {
		return fmt.Errorf("admin: failed to store session: %w", err)
	}
	return nil
}

func (store *RedisSessionStore) Exists(context context.Context, sessionID string) (bool, error) {
	count, err := store.client.Exists(context, sessionKey(sessionID)).Result()
	if err != nil {
		return false, fmt.Errorf("admin: failed to check session: %w", err)
	}
	return count > 0, nil
}

func (store *RedisSessionStore) Delete(context context.Context, sessionID string) error {
	if err := store.client.Del(context, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("admin: failed to delete session: %w", err)
	}
	return nil
}
