package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/tui/core"
)

// Launch starts the board TUI against the configured backend. Logging is
// expected to be set up by the caller.
func Launch(ctx context.Context) error {
	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}
	slog.Info("starting board", "backend", c.Config.Backend.BaseURL)

	tuiApp := core.New(ctx, board.New(c.Client), c.Config)
	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	// Wait for program completion or cancellation
	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received")
		<-errChan
	}

	return nil
}
