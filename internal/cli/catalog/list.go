package catalog

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/resource"
)

// ListCmd returns the catalog list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <resource>",
		Short: "List records of a resource",
		Long: `List every record of a catalog resource.

Examples:
  plantel catalog list sports
  plantel catalog list consulting-rooms --json
  plantel catalog list responsibles --quiet
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: resourceArg,
		RunE:              runList,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	name := args[0]

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	records, err := cliInstance.Client.Records(name)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Run 'plantel catalog --help' for the list of resources")
	}

	list := resource.NewList[models.Record](records.List)
	if err := list.Load(ctx); err != nil {
		return formatter.Fail(err)
	}
	items := list.Items()

	if formatter.Quiet {
		for _, r := range items {
			formatter.Printf("%d\n", r.RecordKey())
		}
		return nil
	}

	if formatter.JSON {
		return formatter.JSONResult("records", items)
	}

	if len(items) == 0 {
		formatter.Printf("No %s found\n", name)
		return nil
	}

	formatter.Printf("%s\n", styles.TitleStyle.Render(name))
	for _, r := range items {
		formatter.Printf("  %3d  %s\n", r.RecordKey(), r.DisplayName())
	}
	return nil
}
