// main.go
package main

import (
	"log"

	"cinema-wizard/cmd"
	"cinema-wizard/internal/data/gateway"
	"cinema-wizard/internal/session"
	"cinema-wizard/internal/wire"
	"cinema-wizard/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Clients for the booking backend collaborators
	gw := gateway.New(gateway.Config{
		BaseURL: config.Backend.BaseURL,
		Timeout: config.Backend.Timeout,
	}, logger)

	logger.Info("Backend gateway configured",
		zap.String("base_url", config.Backend.BaseURL),
		zap.Duration("timeout", config.Backend.Timeout),
	)

	// In-memory wizard session registry
	sessions := session.NewManager(config.Wizard.SessionTTL, logger)

	// Wire all dependencies
	app := wire.Wiring(gw, sessions, config, logger)

	// Start server
	logger.Info("Starting HTTP server", zap.String("port", config.App.Port))

	cmd.APIServer(app.Router, config.App.Port)
}
