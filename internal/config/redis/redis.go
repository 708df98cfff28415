package redis

import (
	"context"
	"time"

	"auth-service/internal/config/env"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedis connects to the profile cache. It returns nil when the cache is
// disabled, in which case callers read straight from the database.
func NewRedis(log *logrus.Logger, config *env.Config) *redis.Client {
	if !config.Redis.Enabled {
		log.Info("Redis profile cache disabled")
		return nil
	}

	pool := config.Redis.Pool
	rdb := redis.NewClient(&redis.Options{
		Addr:     config.Redis.Address,
		Password: config.Redis.Password,
		DB:       config.Redis.DB,

		PoolSize:        pool.Size,
		MinIdleConns:    pool.MinIdle,
		MaxIdleConns:    pool.MaxIdle,
		ConnMaxLifetime: time.Duration(pool.Lifetime) * time.Second,
		ConnMaxIdleTime: time.Duration(pool.IdleTimeout) * time.Second,

		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		log.WithError(err).WithField("address", config.Redis.Address).Fatal("failed to connect to redis")
	}

	log.WithField("address", config.Redis.Address).Info("Redis profile cache connected")
	return rdb
}
