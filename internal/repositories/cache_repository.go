package repositories

import (
	"context"
	"time"
)

// CacheRepositoryInterface - внешний кеш производных данных (сейчас только геокодинг).
// Отсутствие ключа возвращается как apperrors.ErrNotFound.
type CacheRepositoryInterface interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Del(ctx context.Context, keys ...string) error
}
