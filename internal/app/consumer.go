package app

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"go-chms/internal/audit"
	"go-chms/internal/messaging/kafka/consumer"
	"go-chms/internal/shared/connection"
)

// RunConsumer persists audit entries from the audit topic until interrupted.
func RunConsumer() error {
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

	auditConsumer := consumer.NewAuditConsumer(cfg.KafkaBroker, cfg.KafkaGroupID, audit.NewRepository(db))
	defer func() {
		if err := auditConsumer.Close(); err != nil {
			zap.L().Warn("failed to close consumer", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return auditConsumer.Run(ctx)
}
