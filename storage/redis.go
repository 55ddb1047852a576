package storage

import (
	"context"
	"crypto/tls"
	"strings"

	"github.com/redis/go-redis/v9"
)

// RedisSlot stores the board blob in Redis. The value is written without an
// expiry; the slot is durable state, not a cache.
type RedisSlot struct {
	client *redis.Client
}

// NewRedisSlot wraps the provided Redis client as a Slot.
func NewRedisSlot(client *redis.Client) *RedisSlot {
	if client == nil {
		panic("storage.NewRedisSlot: redis client is nil")
	}
	return &RedisSlot{client: client}
}

func (r *RedisSlot) Get(ctx context.Context, key string) ([]byte, bool, error) {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	return data, true, nil
}

func (r *RedisSlot) Set(ctx context.Context, key string, data []byte) error {
	return r.client.Set(ctx, key, data, 0).Err()
}

func (r *RedisSlot) Remove(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// ParseRedisOptions turns a connection string into client options. It accepts
// standard redis:// URLs and falls back to the comma-separated
// "host:port,password=...,ssl=true" form some managed offerings emit.
func ParseRedisOptions(connStr string) (*redis.Options, error) {
	opts, err := redis.ParseURL(connStr)
	if err == nil {
		return opts, nil
	}
	parts := strings.Split(connStr, ",")
	opts = &redis.Options{Addr: parts[0]}
	for _, p := range parts[1:] {
		kv := strings.SplitN(p, "=", 2)
		if len(kv) != 2 {
			continue
		}
		switch strings.ToLower(kv[0]) {
		case "password":
			opts.Password = kv[1]
		case "ssl":
			if strings.ToLower(kv[1]) == "true" {
				opts.TLSConfig = &tls.Config{}
			}
		}
	}
	return opts, nil
}
