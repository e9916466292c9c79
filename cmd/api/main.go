package main

import (
	"log"

	"go.uber.org/zap"

	"go-chms/internal/app"
	"go-chms/internal/shared/apperror"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	apperror.Init()

	if err := app.RunAPI(); err != nil {
		logger.Fatal("api exited", zap.Error(err))
	}
}
