package main

import (
	"log"

	"go.uber.org/zap"

	"go-chms/internal/app"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := app.RunConsumer(); err != nil {
		logger.Fatal("consumer exited", zap.Error(err))
	}
}
