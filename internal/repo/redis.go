package repo

import (
	"context"

	"gridgame/internal/config"
	"gridgame/pkg/logger"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var RDB *redis.Client

// InitRedis connects to the configured Redis instance. A failure
// here is fatal: the distributed lock and cache degrade to
// single-replica-only behavior without Redis, acceptable for a dev
// box but not for a fleet.
func InitRedis() {
	conf := config.GlobalConfig.Redis
	RDB = redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})

	if _, err := RDB.Ping(context.Background()).Result(); err != nil {
		logger.Log.Fatal("failed to connect to redis", zap.Error(err))
	}
}
