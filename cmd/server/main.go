package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/app"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/config"
	"github.com/9oormthon-univ/2025-SEASONTHON-TEAM-29-BE/internal/logger"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	logger.Init()
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()

	application, err := app.New(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", map[string]any{
			"error": err.Error(),
		})
	}

	go func() {
		if err := application.Run(); err != nil {
			logger.Fatal("http server failed", map[string]any{
				"error": err.Error(),
			})
		}
	}()

	logger.Info("wedit backend started", map[string]any{
		"port": cfg.AppPort,
	})

	<-ctx.Done() // wait for Ctrl+C

	logger.Info("shutdown signal received", nil)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		10*time.Second,
	)
	defer cancel()

	if err := application.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("graceful shutdown failed", map[string]any{
			"error": err.Error(),
		})
	}

	logger.Info("wedit backend stopped cleanly", nil)
}
