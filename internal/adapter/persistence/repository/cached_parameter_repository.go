package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"quotesmith/internal/domain/entities"
	"quotesmith/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultParameterCacheTTL = 5 * time.Minute

// CachedParameterRepository is a read-through cache in front of the override
// store. Every quote calculation hits the override lookup, so the hot path is
// served from Redis; the underlying store stays the source of truth and cache
// failures fall back to it.
type CachedParameterRepository struct {
	inner interfaces.IParameterRepository
	rdb   *redis.Client
	ttl   time.Duration
	log   *zap.Logger
}

var _ interfaces.IParameterRepository = (*CachedParameterRepository)(nil)

func NewCachedParameterRepository(inner interfaces.IParameterRepository, rdb *redis.Client, ttl time.Duration, log *zap.Logger) *CachedParameterRepository {
	if ttl <= 0 {
		ttl = defaultParameterCacheTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &CachedParameterRepository{inner: inner, rdb: rdb, ttl: ttl, log: log}
}

func parameterCacheKey(userID, industry string) string {
	return fmt.Sprintf("params:%s:%s", userID, industry)
}

func (r *CachedParameterRepository) Get(ctx context.Context, userID, industry string) (*entities.IndustryParameters, error) {
	key := parameterCacheKey(userID, industry)

	if raw, err := r.rdb.Get(ctx, key).Result(); err == nil {
		var p entities.IndustryParameters
		if jerr := json.Unmarshal([]byte(raw), &p); jerr == nil {
			return &p, nil
		}
		// Unreadable entry; drop it and fall through to the store.
		r.rdb.Del(ctx, key)
	} else if err != redis.Nil {
		r.log.Warn("parameter cache read failed", zap.String("key", key), zap.Error(err))
	}

	p, err := r.inner.Get(ctx, userID, industry)
	if err != nil {
		return nil, err
	}
	if p != nil {
		if raw, jerr := json.Marshal(p); jerr == nil {
			if serr := r.rdb.Set(ctx, key, raw, r.ttl).Err(); serr != nil {
				r.log.Warn("parameter cache write failed", zap.String("key", key), zap.Error(serr))
			}
		}
	}
	return p, nil
}

func (r *CachedParameterRepository) Put(ctx context.Context, userID, industry string, params entities.IndustryParameters) error {
	if err := r.inner.Put(ctx, userID, industry, params); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, parameterCacheKey(userID, industry)).Err(); err != nil {
		r.log.Warn("parameter cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}

func (r *CachedParameterRepository) Delete(ctx context.Context, userID, industry string) error {
	if err := r.inner.Delete(ctx, userID, industry); err != nil {
		return err
	}
	if err := r.rdb.Del(ctx, parameterCacheKey(userID, industry)).Err(); err != nil {
		r.log.Warn("parameter cache invalidation failed", zap.String("user_id", userID), zap.Error(err))
	}
	return nil
}
