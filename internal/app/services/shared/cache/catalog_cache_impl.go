package cache

import (
	"context"
	"fmt"
	"sehatnama-service/internal/app/contracts"
	"sehatnama-service/internal/pkg/constvars"
	"sehatnama-service/internal/pkg/utils"
	"strconv"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// catalogCache keys list pages by a per-catalog version. Invalidate bumps the
// version so stale pages are never read again and expire on their own TTL.
type catalogCache struct {
	redisRepo contracts.RedisRepository
	ttl       time.Duration
	Log       *zap.Logger
}

func NewCatalogCache(redisRepo contracts.RedisRepository, ttl time.Duration, logger *zap.Logger) contracts.CatalogCache {
	return &catalogCache{
		redisRepo: redisRepo,
		ttl:       ttl,
		Log:       logger,
	}
}

func (c *catalogCache) Get(ctx context.Context, catalog, pageKey string, dest interface{}) (bool, error) {
	key, err := c.pageKey(ctx, catalog, pageKey)
	if err != nil {
		return false, err
	}

	raw, err := c.redisRepo.Get(ctx, key)
	if err != nil {
		return false, err
	}
	if raw == "" {
		return false, nil
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		c.Log.Warn("catalogCache.Get dropping undecodable entry",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingRedisKey, key),
			zap.Error(err),
		)
		return false, nil
	}
	return true, nil
}

func (c *catalogCache) Set(ctx context.Context, catalog, pageKey string, value interface{}) error {
	key, err := c.pageKey(ctx, catalog, pageKey)
	if err != nil {
		return err
	}
	return c.redisRepo.Set(ctx, key, value, c.ttl)
}

func (c *catalogCache) Invalidate(ctx context.Context, catalog string) error {
	_, err := c.redisRepo.Increment(ctx, fmt.Sprintf(constvars.RedisKeyCatalogVersionFormat, catalog))
	return err
}

func (c *catalogCache) pageKey(ctx context.Context, catalog, pageKey string) (string, error) {
	raw, err := c.redisRepo.Get(ctx, fmt.Sprintf(constvars.RedisKeyCatalogVersionFormat, catalog))
	if err != nil {
		return "", err
	}

	var version int64
	if raw != "" {
		version, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			version = 0
		}
	}
	return fmt.Sprintf(constvars.RedisKeyCatalogListFormat, catalog, version, pageKey), nil
}

// PageKey renders a list query into the cache key suffix.
func PageKey(page, limit int, search string) string {
	return fmt.Sprintf("p%d:l%d:q=%s", page, limit, search)
}
