package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/dom/superheroes-api/internal/bootstrap"
	"github.com/dom/superheroes-api/internal/config"
	"github.com/dom/superheroes-api/internal/logging"
	"github.com/dom/superheroes-api/internal/mcp"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize", zap.Error(err))
	}
	defer app.Close()

	server := mcp.NewServer(app.Services.Hero, logger)

	logger.Info("Superheroes MCP server running on stdio")
	if err := mcp.Serve(ctx, server); err != nil && ctx.Err() == nil {
		logger.Error("MCP server stopped", zap.Error(err))
	}
}
