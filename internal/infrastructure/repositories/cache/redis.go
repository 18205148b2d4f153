package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisClient is the subset of *redis.Client used by RedisStore
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	ZAddNX(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd
	ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

// redisEnvelope is the stored form of a Record
type redisEnvelope struct {
	Value    json.RawMessage `json:"value"`
	CachedAt time.Time       `json:"cached_at"`
}

// RedisStore keeps records in Redis without expiry so stale reads stay possible.
// A sorted set per namespace, scored by first-insertion time, preserves key order.
type RedisStore struct {
	client RedisClient
	prefix string
	now    func() time.Time
}

// NewRedisStore creates a store that connects to addr
func NewRedisStore(addr, password string, db int, prefix string) *RedisStore {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return NewRedisStoreWithClient(rdb, prefix)
}

// NewRedisStoreWithClient wraps an existing client
func NewRedisStoreWithClient(client RedisClient, prefix string) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *RedisStore) recordKey(namespace, key string) string {
	return fmt.Sprintf("%s%s:%s", r.prefix, namespace, key)
}

func (r *RedisStore) indexKey(namespace string) string {
	return fmt.Sprintf("%s%s:__keys", r.prefix, namespace)
}

// Get retrieves and decodes a record
func (r *RedisStore) Get(ctx context.Context, namespace, key string) (Record, error) {
	raw, err := r.client.Get(ctx, r.recordKey(namespace, key)).Result()
	if errors.Is(err, redis.Nil) {
		return Record{}, ErrKeyNotFound
	}
	if err != nil {
		return Record{}, err
	}

	var env redisEnvelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return Record{}, fmt.Errorf("%w: %s: %v", ErrCorruptRecord, key, err)
	}
	return Record{Value: string(env.Value), CachedAt: env.CachedAt}, nil
}

// Put writes the record and registers key in the namespace index
func (r *RedisStore) Put(ctx context.Context, namespace, key string, record Record) error {
	payload, err := json.Marshal(redisEnvelope{
		Value:    json.RawMessage(record.Value),
		CachedAt: record.CachedAt,
	})
	if err != nil {
		return fmt.Errorf("failed to encode cache record: %w", err)
	}

	if err := r.client.Set(ctx, r.recordKey(namespace, key), payload, 0).Err(); err != nil {
		return err
	}

	// NX keeps the score of the first insertion
	member := redis.Z{Score: float64(r.now().UnixMicro()), Member: key}
	return r.client.ZAddNX(ctx, r.indexKey(namespace), member).Err()
}

// Keys lists the keys of namespace in first-insertion order
func (r *RedisStore) Keys(ctx context.Context, namespace string) ([]string, error) {
	return r.client.ZRange(ctx, r.indexKey(namespace), 0, -1).Result()
}

// Ping checks if the Redis connection is alive
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (r *RedisStore) Close() error {
	return r.client.Close()
}
