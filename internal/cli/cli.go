package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	Config *config.Config
	Client *api.Client
}

// NewCLI builds a CLI from the user's configuration
func NewCLI(cfg *config.Config) *CLI {
	return &CLI{
		Config: cfg,
		Client: api.New(api.Options{
			BaseURL:        cfg.Backend.BaseURL,
			CURPURL:        cfg.Services.CURPURL,
			MedicationURL:  cfg.Services.MedicationURL,
			TranslationURL: cfg.Services.TranslationURL,
			Timeout:        cfg.Backend.Timeout,
		}),
	}
}

type contextKey struct{}

// WithCLI stores a CLI in ctx. Commands prefer an injected CLI over loading
// the configuration themselves.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// GetCLIFromContext returns the injected CLI or builds one from the config file
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
			return c, nil
		}
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return NewCLI(cfg), nil
}
