package program

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
)

// ListCmd returns the program list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List programs",
		Long: `List programs in board order with their member counts.

Examples:
  plantel program list
  plantel program list --json
  plantel program list --quiet
`,
		RunE: runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	programs, err := cliInstance.Client.ListPrograms(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet {
		for _, p := range programs {
			formatter.Printf("%d\n", p.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult("programs", programs)
	}

	if len(programs) == 0 {
		formatter.Printf("No programs found\n")
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render("Programs"))
	for i, p := range programs {
		formatter.Printf("  %d. %s (ID: %d, athletes: %d)\n", i+1, p.Name, p.ID, len(p.AthleteIDs))
	}
	return nil
}
