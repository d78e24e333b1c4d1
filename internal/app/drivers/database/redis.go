package database

import (
	"context"
	"net"
	"sehatnama-service/internal/app/config"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const redisPingTimeout = 5 * time.Second

// NewRedisClient backs sessions, the document process lock, quotas and the catalog cache.
func NewRedisClient(driverConfig *config.DriverConfig, log *zap.Logger) *redis.Client {
	addr := net.JoinHostPort(driverConfig.Redis.Host, driverConfig.Redis.Port)
	rdb := redis.NewClient(&redis.Options{
		Addr:       addr,
		Password:   driverConfig.Redis.Password,
		DB:         driverConfig.Redis.DB,
		ClientName: "sehatnama-service",
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Could not connect to Redis", zap.String("addr", addr), zap.Error(err))
	}
	log.Info("Successfully connected to redis", zap.String("addr", addr), zap.Int("db", driverConfig.Redis.DB))

	return rdb
}
