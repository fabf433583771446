package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const pingTimeout = 5 * time.Second

// ErrNotConfigured is returned by the helpers when Init was never
// called. Callers treat it like any other Redis failure and fall back
// to uncached behavior.
var ErrNotConfigured = errors.New("redis: client not configured")

var client *redis.Client

// Init connects to Redis and verifies the connection with a ping.
func Init(url, password string) error {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return err
	}
	if password != "" {
		opts.Password = password
	}

	c := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	if err := c.Ping(ctx).Err(); err != nil {
		return err
	}

	client = c
	return nil
}

// SetClient replaces the package client. Tests use it to point the
// helpers at a miniredis instance.
func SetClient(c *redis.Client) {
	client = c
}

// GetClient returns the package client, nil when not configured.
func GetClient() *redis.Client {
	return client
}

// Set stores value under key with the given TTL.
func Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if client == nil {
		return ErrNotConfigured
	}
	return client.Set(ctx, key, value, ttl).Err()
}

// Get returns the string value stored under key.
func Get(ctx context.Context, key string) (string, error) {
	if client == nil {
		return "", ErrNotConfigured
	}
	return client.Get(ctx, key).Result()
}

// Del removes key.
func Del(ctx context.Context, key string) error {
	if client == nil {
		return ErrNotConfigured
	}
	return client.Del(ctx, key).Err()
}

// SetNX stores value under key only when the key is absent. The bool
// reports whether the write happened.
func SetNX(ctx context.Context, key string, value interface{}, ttl time.Duration) (bool, error) {
	if client == nil {
		return false, ErrNotConfigured
	}
	return client.SetNX(ctx, key, value, ttl).Result()
}
