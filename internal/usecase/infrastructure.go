package usecase

import (
	"context"
	"time"
)

// CacheRepository — шлюз кэша. Любой сбой бэкенда деградирует до
// промаха/no-op: обработчики логируют ошибку и продолжают работу.
// Нулевая реализация (NopCacheRepo) подставляется при выключенном кэше,
// поэтому обработчики не ветвятся по признаку "кэш включён".
type CacheRepository interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	DeleteByPrefix(ctx context.Context, prefix string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// EventPublisher публикует доменные события best-effort: ошибка публикации
// логируется и никогда не влияет на уже закоммиченную транзакцию.
type EventPublisher interface {
	Publish(ctx context.Context, topic, eventType string, event any) error
}

// TxManager выполняет fn внутри одной транзакции c гарантированным
// откатом на любом неуспешном выходе.
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
