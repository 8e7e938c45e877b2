package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/appointment"
	"github.com/thenoetrevino/plantel/internal/cli/athlete"
	"github.com/thenoetrevino/plantel/internal/cli/board"
	"github.com/thenoetrevino/plantel/internal/cli/catalog"
	"github.com/thenoetrevino/plantel/internal/cli/curp"
	"github.com/thenoetrevino/plantel/internal/cli/medication"
	"github.com/thenoetrevino/plantel/internal/cli/prefs"
	"github.com/thenoetrevino/plantel/internal/cli/program"
	"github.com/thenoetrevino/plantel/internal/cli/report"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/launcher"
	"github.com/thenoetrevino/plantel/internal/logging"
)

var backendURL string

var rootCmd = &cobra.Command{
	Use:   "plantel",
	Short: "Plantel - athlete program board",
	Long: `Plantel assigns athletes to training and treatment programs.

Run without arguments to open the interactive board. The subcommands cover
the same data from scripts: list athletes and programs, move athletes,
manage catalogs, book appointments and print reports.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init("plantel"); err != nil {
			return fmt.Errorf("failed to initialize logging: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if backendURL != "" {
			cfg.Backend.BaseURL = backendURL
		}
		styles.Init(cfg.ColorScheme)
		cmd.SetContext(cli.WithCLI(cmd.Context(), cli.NewCLI(cfg)))
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&backendURL, "backend", "", "Backend base URL (overrides config and PLANTEL_BACKEND_URL)")

	rootCmd.AddCommand(athlete.AthleteCmd())
	rootCmd.AddCommand(program.ProgramCmd())
	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(board.AssignCmd())
	rootCmd.AddCommand(catalog.CatalogCmd())
	rootCmd.AddCommand(appointment.AppointmentCmd())
	rootCmd.AddCommand(report.ReportCmd())
	rootCmd.AddCommand(curp.CURPCmd())
	rootCmd.AddCommand(medication.MedicationCmd())
	rootCmd.AddCommand(prefs.PrefsCmd())
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
