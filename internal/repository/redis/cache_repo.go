package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Ekrem-A/Catalog.Api/pkg/clients"
	"github.com/Ekrem-A/Catalog.Api/pkg/e"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

const deleteScanCount = 100

// CacheRepo — кэш DTO каталога поверх Redis. Значения хранятся как JSON,
// отсутствие ключа и битые данные трактуются как промах.
type CacheRepo struct {
	client *clients.RedisClient
}

func NewCacheRepo(client *clients.RedisClient) *CacheRepo {
	return &CacheRepo{client: client}
}

// Get читает значение по ключу в dest. Возвращает false при промахе.
func (r *CacheRepo) Get(ctx context.Context, key string, dest any) (bool, error) {
	data, err := r.client.Client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	if err := json.Unmarshal(data, dest); err != nil {
		// битая запись, убираем её и считаем промахом
		r.client.Client.Del(ctx, key)
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return true, nil
}

func (r *CacheRepo) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if err := r.client.Client.Set(ctx, key, data, ttl).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *CacheRepo) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteByPrefix удаляет все ключи с данным префиксом через SCAN,
// чтобы не блокировать Redis запросом KEYS.
func (r *CacheRepo) DeleteByPrefix(ctx context.Context, prefix string) error {
	iter := r.client.Client.Scan(ctx, 0, prefix+"*", deleteScanCount).Iterator()

	batch := make([]string, 0, deleteScanCount)
	for iter.Next(ctx) {
		batch = append(batch, iter.Val())

		if len(batch) == deleteScanCount {
			if err := r.client.Client.Del(ctx, batch...).Err(); err != nil {
				return e.Wrap(whereami.WhereAmI(), err)
			}
			batch = batch[:0]
		}
	}
	if err := iter.Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if len(batch) > 0 {
		if err := r.client.Client.Del(ctx, batch...).Err(); err != nil {
			return e.Wrap(whereami.WhereAmI(), err)
		}
	}

	return nil
}

func (r *CacheRepo) Exists(ctx context.Context, key string) (bool, error) {
	n, err := r.client.Client.Exists(ctx, key).Result()
	if err != nil {
		return false, e.Wrap(whereami.WhereAmI(), err)
	}

	return n > 0, nil
}
