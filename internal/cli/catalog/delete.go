package catalog

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
)

// DeleteCmd returns the catalog delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <resource> <id>...",
		Short: "Delete one or more records",
		Long: `Delete records by id. Every id is attempted; the command fails if any
deletion failed.

Examples:
  plantel catalog delete sports 4
  plantel catalog delete schedules 2 3 9 --json
`,
		Args:              cobra.MinimumNArgs(2),
		ValidArgsFunction: resourceArg,
		RunE:              runDelete,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	resource := args[0]

	ids, err := cli.ParseIDs(args[1:])
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	records, err := cliInstance.Client.Records(resource)
	if err != nil {
		return formatter.Fail(err)
	}

	result := records.BulkDelete(ctx, ids)

	failedIDs := make([]int, 0, len(result.Failed))
	for id := range result.Failed {
		failedIDs = append(failedIDs, id)
	}
	slices.Sort(failedIDs)

	switch {
	case formatter.Quiet:
		formatter.IDs(result.Deleted)
	case formatter.JSON:
		failed := make(map[string]string, len(result.Failed))
		for id, ferr := range result.Failed {
			failed[fmt.Sprint(id)] = ferr.Error()
		}
		if err := formatter.JSONResult("result", map[string]any{
			"deleted": result.Deleted,
			"failed":  failed,
		}); err != nil {
			return err
		}
	default:
		for _, id := range result.Deleted {
			formatter.Printf("Deleted %s %d\n", resource, id)
		}
		for _, id := range failedIDs {
			formatter.Printf("Failed to delete %s %d: %v\n", resource, id, result.Failed[id])
		}
	}

	if result.OK() {
		return nil
	}
	// report the first failure's kind through the exit code
	first := result.Failed[failedIDs[0]]
	return &cli.ExitError{Code: cli.ExitCode(first), Err: first, Reported: true}
}
