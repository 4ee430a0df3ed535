package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/dom/superheroes-api/internal/bootstrap"
	"github.com/dom/superheroes-api/internal/config"
	"github.com/dom/superheroes-api/internal/logging"
	"github.com/dom/superheroes-api/internal/repository/jsonfile"
	"github.com/dom/superheroes-api/internal/repository/memory"
	"github.com/dom/superheroes-api/internal/repository/postgres"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	dataPath := flag.String("data", cfg.DataPath, "Path to the superheroes JSON dataset")
	timeout := flag.Duration("timeout", 2*time.Minute, "Overall import timeout")
	flag.Parse()

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	if cfg.DatabaseURL == "" {
		logger.Fatal("DATABASE_URL is required to seed")
	}

	heroes, err := jsonfile.Load(*dataPath)
	if err != nil {
		logger.Fatal("Failed to read dataset", zap.Error(err))
	}
	// Reject the same datasets the server would refuse to start with.
	if _, err := memory.NewCatalog(heroes); err != nil {
		logger.Fatal("Invalid dataset", zap.String("path", *dataPath), zap.Error(err))
	}

	db, err := postgres.NewConnection(cfg.DatabaseURL, bootstrap.GormLogLevel(cfg))
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	repos := postgres.NewRepositories(db)
	// The table mirrors the file: heroes dropped from the file are removed.
	if err := repos.Hero.ReplaceAll(ctx, heroes); err != nil {
		logger.Fatal("Failed to import heroes", zap.Error(err))
	}

	logger.Info("Seeded heroes", zap.Int("count", len(heroes)), zap.String("path", *dataPath))
}
