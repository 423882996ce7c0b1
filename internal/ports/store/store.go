package store

import (
	"context"
	"time"
)

// Store интерфейс key-value хранилища, от которого зависят
// скоринг и выдача интересов.
//
// Get — надёжное чтение: промах это (_, false, nil), ошибка означает
// недоступность хранилища. CacheGet — кэшовое чтение: любая ошибка
// деградирует до промаха. CacheSet пишет значение с TTL best-effort.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	CacheGet(ctx context.Context, key string) (string, bool)
	CacheSet(ctx context.Context, key string, value string, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}
