// Copyright (c) 2026 Tubecache. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package ingest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/tubecache/internal/platform/constants"
	"github.com/taibuivan/tubecache/internal/youtube"
)

// CachedFetcher decorates a [youtube.Fetcher] with a Redis raw-page cache.
//
// Every page served from the cache is one request that never counts against
// the remote daily quota; re-importing a channel within the TTL costs zero
// quota units. Cache failures are logged and bypassed, never surfaced: the
// cache is an optimization, not a dependency.
type CachedFetcher struct {
	next   youtube.Fetcher
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

func NewCachedFetcher(next youtube.Fetcher, client *redis.Client, ttl time.Duration, logger *slog.Logger) *CachedFetcher {
	return &CachedFetcher{
		next:   next,
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// FetchPage implements [youtube.Fetcher].
func (fetcher *CachedFetcher) FetchPage(context context.Context, kind youtube.Kind, key string, pageToken string) (*youtube.Page, error) {
	cacheKey := pageCacheKey(kind, key, pageToken)

	cached, err := fetcher.client.Get(context, cacheKey).Bytes()
	if err == nil {
		page := &youtube.Page{}
		if err := json.Unmarshal(cached, page); err == nil {
			return page, nil
		}
		// Unreadable entry: fall through and overwrite it.
		fetcher.logger.Warn("page_cache_corrupt", slog.String("cache_key", cacheKey))
	} else if !errors.Is(err, redis.Nil) {
		fetcher.logger.Warn("page_cache_read_failed",
			slog.String("cache_key", cacheKey),
			slog.Any("error", err),
		)
	}

	page, err := fetcher.next.FetchPage(context, kind, key, pageToken)
	if err != nil {
		return nil, err
	}

	// Only successful pages are cached; errors must retry upstream.
	encoded, err := json.Marshal(page)
	if err == nil {
		if err := fetcher.client.Set(context, cacheKey, encoded, fetcher.ttl).Err(); err != nil {
			fetcher.logger.Warn("page_cache_write_failed",
				slog.String("cache_key", cacheKey),
				slog.Any("error", err),
			)
		}
	}

	return page, nil
}

func pageCacheKey(kind youtube.Kind, key string, pageToken string) string {
	return constants.RedisPrefixPage + string(kind) + ":" + key + ":" + pageToken
}
