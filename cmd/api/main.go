package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"rentloo/internal/app/bootstrap"
)

// @title Rentloo API
// @version 1.0
// @description Client logic for the Rentloo peer-to-peer rental marketplace.
// @BasePath /
func main() {
	app, err := bootstrap.NewAPIApp()
	if err != nil {
		slog.Error("bootstrap failed",
			"event", "bootstrap_failed",
			"module", "cmd/api",
			"error", err,
		)
		os.Exit(1)
	}
	defer func() {
		_ = app.Close()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		app.Logger.Error("server exited",
			"event", "server_exited",
			"module", "cmd/api",
			"error", err,
		)
		os.Exit(1)
	}
}
