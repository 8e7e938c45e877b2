package athlete

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/resource"
)

// ListCmd returns the athlete list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List athletes",
		Long: `List every athlete known to the backend.

Examples:
  # Human-readable list
  plantel athlete list

  # Only athletes whose name contains "torres"
  plantel athlete list --search=torres

  # JSON output for agents
  plantel athlete list --json
`,
		RunE: runList,
	}

	cmd.Flags().String("search", "", "Case-insensitive name filter")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	search, _ := cmd.Flags().GetString("search")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	athletes := resource.NewList[*models.Athlete](cliInstance.Client.ListAthletes)
	if err := athletes.Load(ctx); err != nil {
		return formatter.Fail(err)
	}
	athletes.Remove(func(a *models.Athlete) bool { return !a.Matches(search) })
	matched := athletes.Items()

	if formatter.Quiet {
		for _, a := range matched {
			formatter.Printf("%d\n", a.ID)
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult("athletes", matched)
	}

	if len(matched) == 0 {
		formatter.Printf("No athletes found\n")
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(fmt.Sprintf("Athletes (%d)", len(matched))))
	for _, a := range matched {
		formatter.Printf("  %3d  %-32s %s\n", a.ID, a.FullName(), styles.SubtitleStyle.Render(a.Sport))
	}
	return nil
}
