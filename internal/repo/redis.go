package repo

import (
	"context"
	"time"

	"balatro-spectator/internal/config"
	"balatro-spectator/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RDB *redis.Client

// InitRedis connects the result cache. It leaves RDB nil when redis is
// disabled or unreachable; the advisor then computes every request.
func InitRedis(conf config.RedisConfig) *redis.Client {
	if !conf.Enabled {
		logger.Log.Info("Redis cache disabled")
		return nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Log.Warn("Failed to connect to Redis, running without cache",
			zap.String("addr", conf.Addr),
			zap.Error(err),
		)
		_ = client.Close()
		return nil
	}

	logger.Log.Info("Redis cache connected", zap.String("addr", conf.Addr))
	RDB = client
	return client
}
