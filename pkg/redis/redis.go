package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/JosuePerezValenzuela/Web-infraestructura-sub000/config"
)

// Client wraps the Redis connection.
// Used as a short-lived cache for catalog searches and as the rate-limit
// counter backend. Every caller must tolerate a nil *Client: the server
// runs degraded without Redis.
type Client struct {
	rdb    *goredis.Client
	logger *zap.Logger
}

// NewClient connects to Redis and verifies the connection with a ping.
func NewClient(cfg *config.RedisConfig, logger *zap.Logger) (*Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("conectando a Redis: %w", err)
	}

	logger.Info("conexion a Redis establecida", zap.String("addr", cfg.Addr))

	return &Client{rdb: rdb, logger: logger}, nil
}

// GetJSON reads a cached value into dest. Returns false on miss or error.
func (c *Client) GetJSON(ctx context.Context, key string, dest interface{}) bool {
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		c.logger.Warn("entrada de cache corrupta", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// SetJSON stores a value with a TTL. Errors are logged, never propagated:
// the cache is best effort.
func (c *Client) SetJSON(ctx context.Context, key string, value interface{}, ttl time.Duration) {
	raw, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("no se pudo serializar para cache", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.rdb.Set(ctx, key, raw, ttl).Err(); err != nil {
		c.logger.Warn("no se pudo escribir en cache", zap.String("key", key), zap.Error(err))
	}
}

// DeletePrefix removes every key under the given prefix.
func (c *Client) DeletePrefix(ctx context.Context, prefix string) {
	iter := c.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		c.rdb.Del(ctx, iter.Val())
	}
}

// CheckRateLimit counts a hit under key within a fixed window.
// Returns false when the caller exceeded the limit.
func (c *Client) CheckRateLimit(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	n, err := c.rdb.Incr(ctx, key).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		c.rdb.Expire(ctx, key, window)
	}
	return n <= int64(limit), nil
}

// Close releases the Redis connection.
func (c *Client) Close() error {
	return c.rdb.Close()
}
