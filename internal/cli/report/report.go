package report

import (
	"github.com/spf13/cobra"
)

// ReportCmd returns the report parent command
func ReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Appointment statistics and PDF reports",
	}

	cmd.AddCommand(StatsCmd())
	cmd.AddCommand(PDFCmd())

	return cmd
}
