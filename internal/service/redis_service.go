package service

import (
	"context"
	"errors"
	"time"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// redisClient is the subset of *redis.Client the cache needs.
type redisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// RedisService is a JSON cache. With no client every lookup misses and
// every write is dropped.
type RedisService struct {
	client redisClient
	logger *logrus.Logger
	tracer trace.Tracer
}

func NewRedisService(client *redis.Client, logger *logrus.Logger) *RedisService {
	s := &RedisService{logger: logger, tracer: otel.Tracer("RedisService")}
	if client != nil {
		s.client = client
	}
	return s
}

func (r *RedisService) Enabled() bool {
	return r.client != nil
}

// Get retrieves a string JSON value from Redis.
func (r *RedisService) Get(ctx context.Context, key string) (string, bool) {
	if !r.Enabled() {
		return "", false
	}

	spanCtx, span := r.tracer.Start(ctx, "RedisService.Get")
	defer span.End()

	logger := r.logger.WithContext(spanCtx).WithField("key", key)

	cached, err := r.client.Get(spanCtx, key).Result()
	if errors.Is(err, redis.Nil) {
		logger.Debug("Cache miss")
		return "", false
	}
	if err != nil {
		logger.WithError(err).Error("Redis get failed")
		return "", false
	}

	logger.Debug("Cache hit")
	return cached, true
}

// Set marshals data to JSON and stores it with ttl.
func (r *RedisService) Set(ctx context.Context, key string, data interface{}, ttl time.Duration) error {
	if !r.Enabled() {
		return nil
	}

	spanCtx, span := r.tracer.Start(ctx, "RedisService.Set")
	defer span.End()

	logger := r.logger.WithContext(spanCtx).WithField("key", key)

	payload, err := json.Marshal(data)
	if err != nil {
		logger.WithError(err).Warn("Failed to marshal cache payload")
		return err
	}
	if err := r.client.Set(spanCtx, key, payload, ttl).Err(); err != nil {
		logger.WithError(err).Error("Failed to store data to redis")
		return err
	}
	return nil
}

func (r *RedisService) Delete(ctx context.Context, key string) error {
	if !r.Enabled() {
		return nil
	}

	spanCtx, span := r.tracer.Start(ctx, "RedisService.Delete")
	defer span.End()

	if err := r.client.Del(spanCtx, key).Err(); err != nil {
		r.logger.WithContext(spanCtx).WithError(err).WithField("key", key).Error("Failed to delete redis key")
		return err
	}
	return nil
}
