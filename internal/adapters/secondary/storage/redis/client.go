package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Erebuz/3-api-validator/internal/ports/store"
	"github.com/redis/go-redis/v9"
)

// Client обёртка над redis.Client для работы с хранилищем.
// Реализует интерфейс store.Store.
type Client struct {
	client *redis.Client
}

// NewStore создаёт Store поверх готового подключения.
func NewStore(client *redis.Client) store.Store {
	return &Client{
		client: client,
	}
}

// Get надёжное чтение: промах ключа не является ошибкой,
// ошибка соединения отдаётся вызывающему.
func (c *Client) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := c.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get failed: %w", err)
	}
	return val, true, nil
}

// CacheGet кэшовое чтение: недоступность хранилища деградирует до промаха.
func (c *Client) CacheGet(ctx context.Context, key string) (string, bool) {
	val, err := c.client.Get(ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// CacheSet записывает значение с TTL.
func (c *Client) CacheSet(ctx context.Context, key string, value string, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

// Ping проверяет доступность хранилища.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis ping failed: %w", err)
	}
	return nil
}

// Close закрывает подключение к хранилищу.
func (c *Client) Close() error {
	return c.client.Close()
}
