package app

import (
	"context"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	kafkamsg "go-chms/internal/messaging/kafka"
	"go-chms/internal/messaging/kafka/producer"
	"go-chms/internal/shared/connection"
)

// RunWorker runs the outbox relay until interrupted.
func RunWorker() error {
	cfg := LoadConfig()

	db, err := connection.ConnectGORMWithRetry(
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode,
		connectRetries,
	)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	writer, err := connection.ConnectKafkaWithRetry(cfg.KafkaBroker, connectRetries)
	if err != nil {
		return err
	}

	publisher := producer.NewPublisher(writer)
	defer func() {
		if err := publisher.Close(); err != nil {
			zap.L().Warn("failed to close publisher", zap.Error(err))
		}
	}()

	relay := producer.NewRelay(kafkamsg.NewOutboxRepository(sqlDB), publisher)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := relay.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}
