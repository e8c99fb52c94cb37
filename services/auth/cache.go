package auth

import (
	"context"
	"time"

	"nextstop/utils"
)

// redisTokenCache backs TokenCache with the shared auth Redis client.
type redisTokenCache struct{}

// NewRedisTokenCache returns a TokenCache backed by the auth Redis DB.
func NewRedisTokenCache() TokenCache {
	return redisTokenCache{}
}

func (redisTokenCache) Set(ctx context.Context, username, tokenHash string, ttl time.Duration) error {
	return utils.CacheTokenHash(ctx, username, tokenHash, ttl)
}

func (redisTokenCache) Del(ctx context.Context, username string) error {
	return utils.DropTokenHash(ctx, username)
}
