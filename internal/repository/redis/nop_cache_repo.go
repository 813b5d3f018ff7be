package redis

import (
	"context"
	"time"
)

// NopCacheRepo — заглушка кэша для работы без Redis.
// Чтение всегда промахивается, запись ничего не делает.
type NopCacheRepo struct{}

func NewNopCacheRepo() *NopCacheRepo {
	return &NopCacheRepo{}
}

func (NopCacheRepo) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (NopCacheRepo) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return nil
}

func (NopCacheRepo) Delete(ctx context.Context, keys ...string) error {
	return nil
}

func (NopCacheRepo) DeleteByPrefix(ctx context.Context, prefix string) error {
	return nil
}

func (NopCacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}
