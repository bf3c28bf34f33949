package main

import (
	"go.uber.org/zap"

	"classificador-web/cmd/server"
	"classificador-web/pkg/backend"
	"classificador-web/pkg/config"
	"classificador-web/pkg/logger"
)

func main() {
	// Load configuration
	cfg := config.Load()

	log := logger.NewLogger()
	defer log.Sync()

	// Typed client for the classification backend
	client := backend.NewClient(cfg.BackendURL, cfg.BackendTimeout, log)

	handler := server.NewHandler(client, cfg, log)

	log.Info("server starting",
		zap.String("port", cfg.Port),
		zap.String("backend_url", cfg.BackendURL))
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
