package main

import (
	"log"

	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/config"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/logger"
	"github.com/Trela-Inc/trelaxadminadmin-sub000/internal/postgres"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	logger.Infow("Connecting to database", "host", cfg.Postgres.Host)

	client, err := postgres.NewClient(cfg, logger)
	if err != nil {
		logger.Fatalw("Failed to connect to postgres", "error", err)
	}

	logger.Info("Running database migrations...")
	if err := client.Migrate(); err != nil {
		logger.Fatalw("Failed to run migrations", "error", err)
	}

	logger.Info("Migration completed successfully")
}
