package main

import (
	"log/slog"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"mtc_backend/internal/app/di"
	"mtc_backend/internal/app/router"
	"mtc_backend/internal/platform/config"
	"mtc_backend/internal/platform/db"
	"mtc_backend/internal/platform/logger"
	"mtc_backend/internal/platform/redis"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}))

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}

	// Redis is optional: without it list queries just skip the cache.
	var rdb *redisv9.Client
	if cfg.RedisAddr != "" {
		if tmp, err := redis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
			slog.Warn("redis unavailable, running without cache", "error", err)
		} else {
			rdb = tmp
			defer func() {
				if err := rdb.Close(); err != nil {
					slog.Error("failed to close redis client", "error", err)
				}
			}()
		}
	}

	r := router.NewRouter(di.NewRouterDeps(cfg, conn, rdb))

	slog.Info("starting server", "port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
