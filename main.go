package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"flightdesk/bootstrap"
	"flightdesk/config"
	"flightdesk/log"
)

func main() {
	// Load .env if present
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Init(os.Stderr, "info")
		log.Errorf(context.Background(), "failed to load configuration: %v", err)
		os.Exit(1)
	}

	log.Init(os.Stderr, cfg.Server.LogLevel)

	app, err := bootstrap.Setup(cfg)
	if err != nil {
		log.Errorf(context.Background(), "failed to start: %v", err)
		os.Exit(1)
	}

	log.Infof(context.Background(), "flight MCP server listening on stdio")
	if err := app.Server.ServeStdio(); err != nil {
		log.Errorf(context.Background(), "server stopped: %v", err)
		os.Exit(1)
	}
}
