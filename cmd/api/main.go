package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"household-orders/config"
	_ "household-orders/docs" // Swagger docs
	"household-orders/internal/bootstrap"
	"household-orders/internal/httpserver"
)

// @title       Household Orders API
// @description Shared household shopping list backed by a spreadsheet.
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
	logger := bootstrap.Logger(cfg.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Infof(ctx, "Starting %s...", cfg.App.Title)
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Timezone: %s", cfg.App.Timezone)

	// 3. Order domain: store, date math, use case
	orderUC, dateMathParser, err := bootstrap.OrderUseCase(ctx, cfg, logger)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize order store: %v", err)
		if cfg.Store.Driver == config.StoreDriverSheets {
			logger.Warn(ctx, "→ Run `go run scripts/gsheets-auth/main.go` to generate token.json, or share the sheet with the service account")
		}
		return
	}

	// 4. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.HTTPServer.RateLimitPerMin,
		Title:           cfg.App.Title,
		OrderUseCase:    orderUC,
		DateMath:        dateMathParser,
		Content:         bootstrap.PagesContent(cfg.Pages),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 5. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
