package prefs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/config"
	clitest "github.com/thenoetrevino/plantel/internal/testutil/cli"
)

func TestSetPreferences(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvThemeFile, "")

	c := cli.NewCLI(config.Default())

	output, err := clitest.ExecuteCLICommand(t, c, SetCmd(), []string{
		"--density", "compact", "--hide", "3,2", "--pin", "1", "--json",
	})
	require.NoError(t, err)

	var result struct {
		Preferences config.Preferences `json:"preferences"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &result))
	assert.Equal(t, config.DensityCompact, result.Preferences.Density)
	assert.Equal(t, []int{2, 3}, result.Preferences.HiddenColumns)
	assert.Equal(t, []int{1}, result.Preferences.PinnedColumns)

	// saved to disk
	saved, err := config.Load()
	require.NoError(t, err)
	assert.True(t, saved.Preferences.Compact())
	assert.True(t, saved.Preferences.IsHidden(3))

	// idempotent hide, then show and unpin
	_, err = clitest.ExecuteCLICommand(t, c, SetCmd(), []string{"--hide", "2", "--show", "3", "--unpin", "1"})
	require.NoError(t, err)
	assert.Equal(t, []int{2}, c.Config.Preferences.HiddenColumns)
	assert.Empty(t, c.Config.Preferences.PinnedColumns)

	output, err = clitest.ExecuteCLICommand(t, c, ShowCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "density: compact")
	assert.Contains(t, output, "hidden:  [2]")
}

func TestSetInvalidDensity(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := cli.NewCLI(config.Default())
	_, err := clitest.ExecuteCLICommand(t, c, SetCmd(), []string{"--density", "tiny"})
	assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
}

func TestSetRejectsUnassignedColumn(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	c := cli.NewCLI(config.Default())
	_, err := clitest.ExecuteCLICommand(t, c, SetCmd(), []string{"--hide", "0"})
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCode(err))
	assert.Empty(t, c.Config.Preferences.HiddenColumns)
}
