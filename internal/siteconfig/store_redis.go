// Copyright (c) 2026 VideoVenta. All rights reserved.
// Author: studio@videoventa.mx

package siteconfig

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/videoventa-mx/videoventa/internal/platform/constants"
)

// cacheTTL bounds staleness if an invalidation is ever lost. Admin writes
// invalidate explicitly, so reads are normally fresh.
const cacheTTL = 10 * time.Minute

// Cache is the Redis read-through cache for the configuration document.
//
// Every public page load fetches the configuration, so it is by far the
// hottest read path in the system. Cache misses and Redis outages degrade
// to PostgreSQL, never to an error.
type Cache struct {
	client *redis.Client
}

func NewCache(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Get returns the cached document, or nil on a miss or any Redis error.
func (cache *Cache) Get(ctx context.Context) *SiteConfig {
	raw, err := cache.client.Get(ctx, constants.RedisKeySiteConfig).Bytes()
	if err != nil {
		return nil
	}

	config := &SiteConfig{}
	if err := json.Unmarshal(raw, config); err != nil {
		return nil
	}
	return config
}

// Set stores the document. Failures are ignored; the next read falls through
// to PostgreSQL.
func (cache *Cache) Set(ctx context.Context, config *SiteConfig) {
	raw, err := json.Marshal(config)
	if err != nil {
		return
	}
	cache.client.Set(ctx, constants.RedisKeySiteConfig, raw, cacheTTL)
}

// Invalidate drops the cached document after an admin write.
func (cache *Cache) Invalidate(ctx context.Context) {
	cache.client.Del(ctx, constants.RedisKeySiteConfig)
}
