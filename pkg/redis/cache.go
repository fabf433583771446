package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrCacheMiss is returned by GetJSON when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// SetJSON marshals v and stores it under key with the given TTL.
func SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return Set(ctx, key, data, ttl)
}

// GetJSON loads key and unmarshals it into v.
func GetJSON(ctx context.Context, key string, v interface{}) error {
	raw, err := Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return ErrCacheMiss
		}
		return err
	}
	return json.Unmarshal([]byte(raw), v)
}
