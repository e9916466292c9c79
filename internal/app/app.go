package app

import (
	"go.uber.org/zap"

	"go-chms/internal/bootstrap"
	"go-chms/internal/shared/connection"
)

const connectRetries = 5

// RunAPI starts the HTTP server with its storage and cache connections.
func RunAPI() error {
	cfg := LoadConfig()

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		connectRetries,
	)
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	redisClient, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, connectRetries)
	if err != nil {
		return err
	}

	engine, err := BuildRouter(db, redisClient, cfg)
	if err != nil {
		return err
	}

	zap.L().Info("api starting", zap.String("port", cfg.Port))
	return bootstrap.RunServer(engine, cfg.Port)
}
