package appointment

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// StatusCmd returns the appointment status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status <id> <scheduled|completed|cancelled|no_show>",
		Short: "Change the status of an appointment",
		Long: `Change the status of an appointment. Cancelled appointments free their slot.

Examples:
  plantel appointment status 12 completed
  plantel appointment status 12 cancelled --json
`,
		Args: cobra.ExactArgs(2),
		RunE: runStatus,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runStatus(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	ids, err := cli.ParseIDs(args[:1])
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	appt, err := cliInstance.Client.SetAppointmentStatus(ctx, types.AppointmentIDFromInt(ids[0]), models.AppointmentStatus(args[1]))
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(appt)
	}
	formatter.Printf("Appointment %d is now %s\n", appt.ID, styles.RenderStatusChip(appt.Status))
	return nil
}
