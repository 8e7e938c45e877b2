package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/testutil"
)

// SetupCLITest starts a seeded backend and returns a CLI pointed at it.
// It lives in its own package so that the cli package tests can use it
// without an import cycle.
func SetupCLITest(t *testing.T) (*testutil.Backend, *cli.CLI) {
	t.Helper()
	backend := testutil.StartBackend(t, true)

	cfg := config.Default()
	cfg.Backend.BaseURL = backend.URL()
	return backend, cli.NewCLI(cfg)
}

// ExecuteCLICommand runs cmd with args against the injected CLI and returns
// everything written to stdout and stderr
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli cannot be nil - SetupCLITest must be called first")
	}

	var out bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&out)

	// Disable usage output on error for cleaner test output
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(cli.WithCLI(context.Background(), c))
	return out.String(), err
}
