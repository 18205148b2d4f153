package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRedisClient is a testify mock of RedisClient
type MockRedisClient struct {
	mock.Mock
}

func (m *MockRedisClient) Get(ctx context.Context, key string) *redis.StringCmd {
	args := m.Called(ctx, key)
	cmd := redis.NewStringCmd(ctx, "get", key)
	if args.Error(1) != nil {
		cmd.SetErr(args.Error(1))
	} else {
		cmd.SetVal(args.String(0))
	}
	return cmd
}

func (m *MockRedisClient) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	args := m.Called(ctx, key, value, expiration)
	cmd := redis.NewStatusCmd(ctx, "set", key, value)
	if args.Error(0) != nil {
		cmd.SetErr(args.Error(0))
	} else {
		cmd.SetVal("OK")
	}
	return cmd
}

func (m *MockRedisClient) ZAddNX(ctx context.Context, key string, members ...redis.Z) *redis.IntCmd {
	args := m.Called(ctx, key, members)
	cmd := redis.NewIntCmd(ctx, "zadd", key)
	if args.Error(0) != nil {
		cmd.SetErr(args.Error(0))
	} else {
		cmd.SetVal(1)
	}
	return cmd
}

func (m *MockRedisClient) ZRange(ctx context.Context, key string, start, stop int64) *redis.StringSliceCmd {
	args := m.Called(ctx, key, start, stop)
	cmd := redis.NewStringSliceCmd(ctx, "zrange", key, start, stop)
	if args.Error(1) != nil {
		cmd.SetErr(args.Error(1))
	} else {
		cmd.SetVal(args.Get(0).([]string))
	}
	return cmd
}

func (m *MockRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	args := m.Called(ctx)
	cmd := redis.NewStatusCmd(ctx, "ping")
	if args.Error(0) != nil {
		cmd.SetErr(args.Error(0))
	} else {
		cmd.SetVal("PONG")
	}
	return cmd
}

func (m *MockRedisClient) Close() error {
	args := m.Called()
	return args.Error(0)
}

func TestRedisStore_Get(t *testing.T) {
	ctx := context.Background()
	cachedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("decodes envelope", func(t *testing.T) {
		client := new(MockRedisClient)
		client.On("Get", ctx, "busyedge:prices:bitcoin").
			Return(`{"value":[{"id":"bitcoin"}],"cached_at":"2024-03-01T12:00:00Z"}`, nil)

		record, err := NewRedisStoreWithClient(client, "busyedge:").Get(ctx, "prices", "bitcoin")

		require.NoError(t, err)
		assert.Equal(t, `[{"id":"bitcoin"}]`, record.Value)
		assert.True(t, cachedAt.Equal(record.CachedAt))
		client.AssertExpectations(t)
	})

	t.Run("redis.Nil maps to ErrKeyNotFound", func(t *testing.T) {
		client := new(MockRedisClient)
		client.On("Get", ctx, "busyedge:prices:bitcoin").Return("", redis.Nil)

		_, err := NewRedisStoreWithClient(client, "busyedge:").Get(ctx, "prices", "bitcoin")

		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("connection errors pass through", func(t *testing.T) {
		client := new(MockRedisClient)
		boom := errors.New("connection refused")
		client.On("Get", ctx, "busyedge:prices:bitcoin").Return("", boom)

		_, err := NewRedisStoreWithClient(client, "busyedge:").Get(ctx, "prices", "bitcoin")

		assert.ErrorIs(t, err, boom)
	})

	t.Run("garbage is a corrupt record", func(t *testing.T) {
		client := new(MockRedisClient)
		client.On("Get", ctx, "busyedge:prices:bitcoin").Return("not json", nil)

		_, err := NewRedisStoreWithClient(client, "busyedge:").Get(ctx, "prices", "bitcoin")

		assert.ErrorIs(t, err, ErrCorruptRecord)
	})
}

func TestRedisStore_Put(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	client := new(MockRedisClient)
	client.On("Set", ctx, "busyedge:overview:global", mock.MatchedBy(func(v interface{}) bool {
		b, ok := v.([]byte)
		return ok && string(b) == `{"value":{"a":1},"cached_at":"2024-03-01T12:00:00Z"}`
	}), time.Duration(0)).Return(nil)
	client.On("ZAddNX", ctx, "busyedge:overview:__keys", []redis.Z{{Score: float64(now.UnixMicro()), Member: "global"}}).Return(nil)

	store := NewRedisStoreWithClient(client, "busyedge:")
	store.now = func() time.Time { return now }

	err := store.Put(ctx, "overview", "global", Record{Value: `{"a":1}`, CachedAt: now})

	require.NoError(t, err)
	client.AssertExpectations(t)
}

func TestRedisStore_PutSetFailureSkipsIndex(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("Set", ctx, "busyedge:overview:global", mock.Anything, time.Duration(0)).Return(errors.New("READONLY"))

	err := NewRedisStoreWithClient(client, "busyedge:").Put(ctx, "overview", "global", Record{Value: `{}`})

	assert.EqualError(t, err, "READONLY")
	client.AssertNotCalled(t, "ZAddNX", mock.Anything, mock.Anything, mock.Anything)
}

func TestRedisStore_Keys(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("ZRange", ctx, "busyedge:prices:__keys", int64(0), int64(-1)).
		Return([]string{"bitcoin,ethereum", "solana"}, nil)

	keys, err := NewRedisStoreWithClient(client, "busyedge:").Keys(ctx, "prices")

	require.NoError(t, err)
	assert.Equal(t, []string{"bitcoin,ethereum", "solana"}, keys)
}

func TestRedisStore_PingAndClose(t *testing.T) {
	ctx := context.Background()
	client := new(MockRedisClient)
	client.On("Ping", ctx).Return(nil)
	client.On("Close").Return(nil)

	store := NewRedisStoreWithClient(client, "busyedge:")

	assert.NoError(t, store.Ping(ctx))
	assert.NoError(t, store.Close())
	client.AssertExpectations(t)
}
