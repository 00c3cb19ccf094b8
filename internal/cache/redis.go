package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Domenick1991/flightregistry/config"
	"github.com/Domenick1991/flightregistry/internal/domain"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client   *redis.Client
	boardTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return NewRedisCacheWithClient(
		redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		time.Duration(cfg.BoardTTLSeconds)*time.Second,
	)
}

func NewRedisCacheWithClient(client *redis.Client, boardTTL time.Duration) *RedisCache {
	return &RedisCache{client: client, boardTTL: boardTTL}
}

// GetBoard returns nil, nil on a cache miss.
func (c *RedisCache) GetBoard(ctx context.Context) ([]domain.FlightSummary, error) {
	data, err := c.client.Get(ctx, boardKey()).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var board []domain.FlightSummary
	if err := json.Unmarshal(data, &board); err != nil {
		return nil, err
	}
	return board, nil
}

// SetBoard replaces the cached board. A zero TTL keeps it until the
// next write.
func (c *RedisCache) SetBoard(ctx context.Context, board []domain.FlightSummary) error {
	payload, err := json.Marshal(board)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, boardKey(), payload, c.boardTTL).Err()
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

func boardKey() string {
	return "cache:flights:board"
}
