// main.go
package main

import (
	"log"

	"moviehub/cmd"
	"moviehub/internal/data/repository"
	"moviehub/internal/wire"
	"moviehub/pkg/metrics"
	"moviehub/pkg/remote"
	"moviehub/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
		zap.String("catalog", config.TMDB.BaseURL),
	)

	metrics.Init()

	// Connect to the movie catalog
	client, err := remote.InitClient(config.TMDB, logger)
	if err != nil {
		logger.Fatal("Failed to initialize catalog client", zap.Error(err))
	}

	repos := repository.NewRepository(client, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, config, logger)

	if err := cmd.APIServer(app.Router, config.App.Port, logger); err != nil {
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Server stopped")
}
