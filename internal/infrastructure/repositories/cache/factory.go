package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/elvis-fintech/busyedge/internal/infrastructure/logging"
)

// StoreType represents the type of store implementation
type StoreType string

const (
	StoreTypeMemory StoreType = "memory"
	StoreTypeRedis  StoreType = "redis"
)

// Config holds store configuration options
type Config struct {
	Type      StoreType
	RedisAddr string
	RedisDB   int
	Password  string
	Prefix    string
}

// Factory creates Store instances
type Factory struct{}

// NewFactory creates a new store factory
func NewFactory() *Factory {
	return &Factory{}
}

// CreateStore creates a store based on configuration
func (f *Factory) CreateStore(config Config) (Store, error) {
	ctx := context.Background()

	switch config.Type {
	case StoreTypeMemory, "":
		logging.Info(ctx, "Creating memory cache store", logging.Fields{
			"type": "memory",
		})
		return NewMemoryStore(), nil

	case StoreTypeRedis:
		logging.Info(ctx, "Creating Redis cache store", logging.Fields{
			"type":     "redis",
			"addr":     config.RedisAddr,
			"database": config.RedisDB,
			"prefix":   config.Prefix,
		})
		return f.createRedisStore(config)

	default:
		return nil, fmt.Errorf("unsupported cache backend: %s", config.Type)
	}
}

// createRedisStore creates the store and verifies the connection
func (f *Factory) createRedisStore(config Config) (Store, error) {
	store := NewRedisStore(config.RedisAddr, config.Password, config.RedisDB, config.Prefix)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.Ping(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", config.RedisAddr, err)
	}

	logging.Info(context.Background(), "Redis connection established successfully", logging.Fields{
		"addr":     config.RedisAddr,
		"database": config.RedisDB,
	})
	return store, nil
}
