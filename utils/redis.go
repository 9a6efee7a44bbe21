package utils

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

var RedisClient *redis.Client

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	RedisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})
}

// GetCached reports whether key was present and, if so, unmarshals into dest.
func GetCached(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := RedisClient.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, json.Unmarshal([]byte(data), dest)
}

func SetCached(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return RedisClient.Set(ctx, key, data, ttl).Err()
}

func DeleteCached(ctx context.Context, keys ...string) {
	if len(keys) > 0 {
		RedisClient.Del(ctx, keys...)
	}
}

// GenerateQueryCacheKey hashes the sorted query params so equivalent filter
// requests share one cache entry.
func GenerateQueryCacheKey(prefix string, queryParams map[string]string) string {
	keys := make([]string, 0, len(queryParams))
	for k := range queryParams {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var builder strings.Builder
	for i, k := range keys {
		if i > 0 {
			builder.WriteString(":")
		}
		builder.WriteString(k)
		builder.WriteString("=")
		builder.WriteString(queryParams[k])
	}

	hash := md5.Sum([]byte(builder.String()))
	return prefix + ":" + hex.EncodeToString(hash[:])
}
