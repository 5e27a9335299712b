package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"study-tracker/config"
	_ "study-tracker/docs" // Swagger docs
	"study-tracker/internal/httpserver"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

// @title       Study Tracker API
// @description Study tracking service backed by Google Sheets: tasks, sessions, subjects, achievements and on-demand analytics.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Study Tracker...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Sheets.SpreadsheetID == "" {
		logger.Warn(ctx, "sheets.spreadsheet_id is empty; every action will answer with an error envelope")
	}

	// 3. Sheets client
	sheetsClient, err := gsheets.NewClientFromCredentialsFile(
		ctx,
		cfg.Sheets.CredentialsPath,
		cfg.Sheets.SpreadsheetID,
		cfg.Sheets.QuotaPerMinute,
	)
	if err != nil {
		logger.Fatalf(ctx, "Failed to create sheets client: %v", err)
	}

	// 4. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Sheets:          sheetsClient,
		SpreadsheetID:   cfg.Sheets.SpreadsheetID,
		CacheSize:       cfg.Cache.Size,
		CacheTTL:        time.Duration(cfg.Cache.TTLSeconds) * time.Second,
		RateLimitPerMin: cfg.RateLimit.PerMinute,
	})
	if err != nil {
		logger.Fatalf(ctx, "Failed to create HTTP server: %v", err)
	}

	// 5. Run
	if err := httpServer.Run(); err != nil {
		logger.Fatalf(ctx, "HTTP server stopped: %v", err)
	}
}
