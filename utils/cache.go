package utils

import (
	"context"
	"log"
	"time"

	"nextstop/config"

	"github.com/go-redis/redis/v8"
)

// AuthCachePrefix is the key prefix for cached auth token hashes.
const AuthCachePrefix = "auth:"

// AuthCacheClient is the dedicated client for authorization caching.
var AuthCacheClient *redis.Client

// InitAuthCache initializes the Redis client for authorization caching
// (using DB from AppConfig for auth cache).
func InitAuthCache() {
	AuthCacheClient = redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisAuthDB,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, err := AuthCacheClient.Ping(ctx).Result()
	if err != nil {
		log.Fatalf("Failed to connect to Redis (Auth Cache): %v", err)
	}
}

// GetAuthCacheClient returns the Redis client for authorization caching.
// It may be nil when the cache has not been initialized; callers treat that
// as a cache miss.
func GetAuthCacheClient() *redis.Client {
	return AuthCacheClient
}

// CacheTokenHash stores the hash of an issued token under the account's auth key
// with the given TTL. Errors are returned so callers may treat caching as optional.
func CacheTokenHash(ctx context.Context, username, tokenHash string, ttl time.Duration) error {
	client := GetAuthCacheClient()
	if client == nil {
		return nil
	}
	return client.Set(ctx, AuthCachePrefix+username, tokenHash, ttl).Err()
}

// DropTokenHash removes any cached token hash for the account, revoking the
// fast-path authorization for outstanding tokens.
func DropTokenHash(ctx context.Context, username string) error {
	client := GetAuthCacheClient()
	if client == nil {
		return nil
	}
	return client.Del(ctx, AuthCachePrefix+username).Err()
}
