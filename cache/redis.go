package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ZaguanLabs/puente"
)

// RedisStore is a Redis-backed translated-fields store. Values are stored as
// JSON; SetNX enforces the first-write-wins contract across processes.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds configuration for the Redis store.
type RedisConfig struct {
	URL       string // Redis connection URL (e.g., "redis://localhost:6379")
	KeyPrefix string // Prefix for all keys (default: "puente:")
}

// NewRedisStore creates a new Redis store with the given configuration.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = "puente:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: prefix,
	}, nil
}

// NewRedisStoreFromClient creates a RedisStore from an existing Redis client.
func NewRedisStoreFromClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "puente:"
	}

	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get retrieves fields from Redis.
func (s *RedisStore) Get(id string) (puente.TranslatedFields, bool) {
	ctx := context.Background()
	val, err := s.client.Get(ctx, s.keyPrefix+id).Result()
	if err == redis.Nil {
		return puente.TranslatedFields{}, false
	}
	if err != nil {
		// Treat transport errors as a cache miss
		return puente.TranslatedFields{}, false
	}

	var fields puente.TranslatedFields
	if err := json.Unmarshal([]byte(val), &fields); err != nil {
		return puente.TranslatedFields{}, false
	}

	return fields, true
}

// Set stores fields in Redis. Existing entries are kept.
func (s *RedisStore) Set(id string, fields puente.TranslatedFields) error {
	data, err := json.Marshal(fields)
	if err != nil {
		return &puente.CacheError{Message: "encode fields", Cause: err}
	}

	ctx := context.Background()
	if err := s.client.SetNX(ctx, s.keyPrefix+id, data, 0).Err(); err != nil {
		return &puente.CacheError{Message: "store fields", Cause: err}
	}
	return nil
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ping tests the Redis connection.
func (s *RedisStore) Ping() error {
	ctx := context.Background()
	return s.client.Ping(ctx).Err()
}

// Verify RedisStore implements Store
var _ Store = (*RedisStore)(nil)
