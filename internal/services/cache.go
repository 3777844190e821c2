package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Gull-Stack/love-rescue-sub003/internal/logger"
	"github.com/Gull-Stack/love-rescue-sub003/internal/utils"
)

// CacheService wraps redis for generated-plan caching and per-user
// rate limiting. A nil *cacheService is safe to call; every method
// degrades to a miss so the app runs without redis.
type CacheService interface {
	GetJSON(ctx context.Context, key string, out any) (bool, error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	RateAllow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	Close() error
}

type cacheService struct {
	log *logger.Logger
	rdb *goredis.Client
}

func NewCacheService(log *logger.Logger) (CacheService, error) {
	serviceLog := log.With("service", "CacheService")

	addr := utils.GetEnv("REDIS_ADDR", "localhost:6379", log)
	password := utils.GetEnv("REDIS_PASSWORD", "", log)
	db := utils.GetEnvAsInt("REDIS_DB", 0, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		Password:    password,
		DB:          db,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &cacheService{log: serviceLog, rdb: rdb}, nil
}

func (cs *cacheService) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	if cs == nil || cs.rdb == nil {
		return false, nil
	}
	raw, err := cs.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, out); err != nil {
		cs.log.Warn("Dropping undecodable cache entry", "key", key, "error", err)
		_ = cs.rdb.Del(ctx, key).Err()
		return false, nil
	}
	return true, nil
}

func (cs *cacheService) SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error {
	if cs == nil || cs.rdb == nil {
		return nil
	}
	raw, err := json.Marshal(val)
	if err != nil {
		return fmt.Errorf("marshal cache value: %w", err)
	}
	return cs.rdb.Set(ctx, key, raw, ttl).Err()
}

func (cs *cacheService) Delete(ctx context.Context, keys ...string) error {
	if cs == nil || cs.rdb == nil || len(keys) == 0 {
		return nil
	}
	return cs.rdb.Del(ctx, keys...).Err()
}

// RateAllow permits at most limit calls per window for the given key.
func (cs *cacheService) RateAllow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	if cs == nil || cs.rdb == nil {
		return true, nil
	}
	counterKey := "rate:" + key
	n, err := cs.rdb.Incr(ctx, counterKey).Result()
	if err != nil {
		return false, err
	}
	if n == 1 {
		if err := cs.rdb.Expire(ctx, counterKey, window).Err(); err != nil {
			cs.log.Warn("Failed to set rate window expiry", "key", counterKey, "error", err)
		}
	}
	return n <= int64(limit), nil
}

func (cs *cacheService) Close() error {
	if cs == nil || cs.rdb == nil {
		return nil
	}
	return cs.rdb.Close()
}
