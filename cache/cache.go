package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisClient is the process-wide Redis client. It stays nil until Init is
// called; Memoize degrades to a direct call in that case so the service
// keeps working without Redis.
var RedisClient *redis.Client

// Init connects the package to a Redis instance.
func Init(addr string) {
	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: "", // No password by default
		DB:       0,  // Default DB
	})
}

// Memoize caches the result of fn in Redis under key for ttl. Errors from
// fn are never cached, and cache failures fall through to a live call.
func Memoize[T any](key string, ttl time.Duration, fn func() (T, error)) (T, error) {
	var result T
	if RedisClient == nil {
		return fn()
	}
	ctx := context.Background()

	// Try fetching from cache
	cachedData, err := RedisClient.Get(ctx, key).Bytes()
	if err == nil {
		if jsonErr := json.Unmarshal(cachedData, &result); jsonErr == nil {
			return result, nil
		}
	}

	// Call the actual function
	result, err = fn()
	if err != nil {
		return result, err
	}

	// Store result in cache
	cacheData, _ := json.Marshal(result)
	RedisClient.Set(ctx, key, cacheData, ttl)

	return result, nil
}
