package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/database"
	"github.com/thenoetrevino/plantel/internal/logging"
	"github.com/thenoetrevino/plantel/internal/server"
)

func main() {
	// Set up signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
		syscall.SIGQUIT,
	)
	defer cancel()

	if err := logging.Init("plantel-server"); err != nil {
		slog.Error("failed to initialize logging", "error", err)
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.InitDB(ctx, cfg.Server.Database)
	if err != nil {
		slog.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing database", "error", err)
		}
	}()

	repo := database.NewRepository(db)
	if cfg.Server.Seed {
		if err := database.Seed(ctx, repo); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	e := server.New(repo)
	errChan := make(chan error, 1)
	go func() {
		slog.Info("plantel server starting", "listen", cfg.Server.Listen, "pid", os.Getpid())
		errChan <- e.Start(cfg.Server.Listen)
	}()

	select {
	case err := <-errChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := e.Shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down server", "error", err)
		}
	}

	slog.Info("plantel server stopped")
}
