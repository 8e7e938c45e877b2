package report

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/models"
)

// PDFCmd returns the report pdf subcommand
func PDFCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pdf",
		Short: "Download the appointments report as PDF",
		Long: `Ask the report service for a PDF of the appointments in a date range,
optionally restricted to some athletes, and save it.

Examples:
  plantel report pdf --from=2026-01-01 --to=2026-01-31
  plantel report pdf --athlete=3 --athlete=5 --out=reports/
`,
		RunE: runPDF,
	}

	cmd.Flags().String("from", "", "First day (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "Last day (YYYY-MM-DD)")
	cmd.Flags().IntSlice("athlete", nil, "Athlete ID (repeatable)")
	cmd.Flags().String("out", ".", "Output file or directory")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runPDF(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	fromFlag, _ := cmd.Flags().GetString("from")
	toFlag, _ := cmd.Flags().GetString("to")
	athletes, _ := cmd.Flags().GetIntSlice("athlete")
	out, _ := cmd.Flags().GetString("out")

	from, err := cli.ParseDate(fromFlag)
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}
	to, err := cli.ParseDate(toFlag)
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	report, err := cliInstance.Client.DownloadPDF(ctx, models.ReportFilter{
		From:       from,
		To:         to,
		AthleteIDs: cli.AthleteIDs(athletes),
	})
	if err != nil {
		return formatter.Fail(err)
	}

	path := out
	if info, err := os.Stat(out); err == nil && info.IsDir() {
		path = filepath.Join(out, report.Filename)
	}
	if err := os.WriteFile(path, report.Data, 0o644); err != nil {
		return formatter.Fail(fmt.Errorf("failed to save report: %w", err))
	}

	if formatter.Quiet {
		formatter.Printf("%s\n", path)
		return nil
	}
	if formatter.JSON {
		return formatter.JSONResult("report", map[string]any{
			"path":  path,
			"bytes": len(report.Data),
		})
	}
	formatter.Printf("Saved %s (%d bytes)\n", path, len(report.Data))
	return nil
}
