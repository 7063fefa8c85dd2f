package rediscache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

const pageKeyPrefix = "storefront:page:"

// PageCache keeps rendered storefront HTML keyed by domain name so the
// public route skips the fetch-and-materialize pass on hot stores. Misses
// and redis failures both fall through to a fresh render.
type PageCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewPageCache(addr, password string, db int, ttl time.Duration) *PageCache {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &PageCache{client: client, ttl: ttl}
}

func (c *PageCache) GetPage(ctx context.Context, domainName string) (string, bool) {
	val, err := c.client.Get(ctx, pageKeyPrefix+domainName).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (c *PageCache) SetPage(ctx context.Context, domainName, html string) error {
	return c.client.Set(ctx, pageKeyPrefix+domainName, html, c.ttl).Err()
}

func (c *PageCache) InvalidatePage(ctx context.Context, domainName string) error {
	return c.client.Del(ctx, pageKeyPrefix+domainName).Err()
}

func (c *PageCache) Close() error {
	return c.client.Close()
}
