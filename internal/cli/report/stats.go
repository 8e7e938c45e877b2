package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/models"
)

// barWidth is the length of the longest bar in the chart column
const barWidth = 24

// StatsCmd returns the report stats subcommand
func StatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show appointment counts",
		Long: `Show appointment counts aggregated by the backend.

Examples:
  plantel report stats
  plantel report stats --by=month
  plantel report stats --by=professional --json
`,
		RunE: runStats,
	}

	cmd.Flags().String("by", string(models.ByStatus), "Grouping: status, month, area or professional")
	cmd.Flags().Int("width", 80, "Wrap width of the rendered table")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	by, _ := cmd.Flags().GetString("by")
	width, _ := cmd.Flags().GetInt("width")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	dimension := models.StatDimension(by)
	stats, err := cliInstance.Client.Stats(ctx, dimension)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.JSON {
		return formatter.JSONResult("stats", stats)
	}
	if formatter.Quiet {
		for _, s := range stats {
			formatter.Printf("%s\t%d\n", s.Label, s.Count)
		}
		return nil
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return formatter.Fail(err)
	}
	out, err := renderer.Render(StatsMarkdown(dimension, stats))
	if err != nil {
		return formatter.Fail(err)
	}
	formatter.Printf("%s", out)
	return nil
}

// StatsMarkdown renders the buckets as a markdown table with a bar column
func StatsMarkdown(by models.StatDimension, stats []models.StatCount) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Appointments by %s\n\n", by)

	if len(stats) == 0 {
		b.WriteString("_No appointments yet._\n")
		return b.String()
	}

	peak, total := 0, 0
	for _, s := range stats {
		total += s.Count
		if s.Count > peak {
			peak = s.Count
		}
	}

	fmt.Fprintf(&b, "| %s | Count | |\n", header(by))
	b.WriteString("|---|---:|---|\n")
	for _, s := range stats {
		bar := 0
		if peak > 0 {
			bar = s.Count * barWidth / peak
		}
		if bar == 0 && s.Count > 0 {
			bar = 1
		}
		fmt.Fprintf(&b, "| %s | %d | %s |\n", escapeCell(s.Label), s.Count, strings.Repeat("█", bar))
	}
	fmt.Fprintf(&b, "\n**Total:** %d\n", total)
	return b.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func header(by models.StatDimension) string {
	if by == "" {
		return "Group"
	}
	return strings.ToUpper(string(by[:1])) + string(by[1:])
}
