package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/c14220110/clinic-portal/config"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Connect membuat client Redis dan memastikan server bisa dijangkau.
func Connect(ctx context.Context, cfg *config.Config, log *zap.Logger) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("ping redis %s: %w", cfg.RedisAddr, err)
	}

	log.Info("connected to redis", zap.String("addr", cfg.RedisAddr))
	return rdb, nil
}
