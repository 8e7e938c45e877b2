package report

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/models"
	clitest "github.com/thenoetrevino/plantel/internal/testutil/cli"
)

func TestStatsMarkdown(t *testing.T) {
	t.Parallel()

	md := StatsMarkdown(models.ByStatus, []models.StatCount{
		{Label: "completed", Count: 6},
		{Label: "no_show", Count: 3},
		{Label: "a|b", Count: 0},
	})

	assert.Contains(t, md, "# Appointments by status")
	assert.Contains(t, md, "| Status | Count | |")
	assert.Contains(t, md, "| completed | 6 | "+strings.Repeat("█", barWidth)+" |")
	assert.Contains(t, md, "| no_show | 3 | "+strings.Repeat("█", barWidth/2)+" |")
	assert.Contains(t, md, `| a\|b | 0 |  |`)
	assert.Contains(t, md, "**Total:** 9")

	assert.Contains(t, StatsMarkdown(models.ByMonth, nil), "_No appointments yet._")
}

func TestStatsCommand(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	t.Run("json", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, StatsCmd(), []string{"--by", "status", "--json"})
		require.NoError(t, err)

		var result struct {
			Stats []models.StatCount `json:"stats"`
		}
		require.NoError(t, json.Unmarshal([]byte(output), &result))
		counts := map[string]int{}
		for _, s := range result.Stats {
			counts[s.Label] = s.Count
		}
		assert.Equal(t, map[string]int{"completed": 6, "no_show": 3, "scheduled": 3}, counts)
	})

	t.Run("rendered", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, StatsCmd(), []string{"--by", "area"})
		require.NoError(t, err)
		assert.Contains(t, output, "Appointments by area")
		assert.Contains(t, output, "Fisioterapia")
	})

	t.Run("unknown dimension", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, StatsCmd(), []string{"--by", "weather"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})
}

func TestPDFCommand(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/appointments/pdf", r.URL.Path)
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition", `attachment; filename="enero.pdf"`)
		_, _ = w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer srv.Close()

	cfg := config.Default()
	cfg.Backend.BaseURL = srv.URL + "/api"
	c := cli.NewCLI(cfg)
	dir := t.TempDir()

	output, err := clitest.ExecuteCLICommand(t, c, PDFCmd(), []string{
		"--from", "2026-01-01", "--to", "2026-01-31", "--athlete", "3", "--athlete", "5", "--out", dir, "--quiet",
	})
	require.NoError(t, err)

	path := filepath.Join(dir, "enero.pdf")
	assert.Equal(t, path, strings.TrimSpace(output))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(data))
	assert.Contains(t, gotQuery, "from=2026-01-01")
	assert.Contains(t, gotQuery, "athlete_id=3&athlete_id=5")

	t.Run("end before start", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, PDFCmd(), []string{"--from", "2026-02-01", "--to", "2026-01-01"})
		assert.Equal(t, cli.ExitUsage, cli.ExitCode(err))
	})

	t.Run("dev backend does not render pdfs", func(t *testing.T) {
		_, devCLI := clitest.SetupCLITest(t)
		_, err := clitest.ExecuteCLICommand(t, devCLI, PDFCmd(), []string{"--out", t.TempDir()})
		assert.Equal(t, cli.ExitFailure, cli.ExitCode(err))
	})
}
