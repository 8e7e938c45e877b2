package catalog

import (
	"encoding/json"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
)

// GetCmd returns the catalog get subcommand
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <resource> <id>",
		Short: "Show one record",
		Long: `Show one catalog record with all of its fields.

Examples:
  plantel catalog get sports 3
  plantel catalog get appointments 12 --json
`,
		Args:              cobra.ExactArgs(2),
		ValidArgsFunction: resourceArg,
		RunE:              runGet,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runGet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	ids, err := cli.ParseIDs(args[1:])
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	records, err := cliInstance.Client.Records(args[0])
	if err != nil {
		return formatter.Fail(err)
	}

	record, err := records.Get(ctx, ids[0])
	if err != nil {
		return formatter.Fail(err)
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(record)
	}

	// Render every field through its JSON name
	var fields map[string]any
	data, err := json.Marshal(record)
	if err != nil {
		return formatter.Fail(err)
	}
	if err := json.Unmarshal(data, &fields); err != nil {
		return formatter.Fail(err)
	}

	body := styles.TitleStyle.Render(record.DisplayName()) + "\n"
	for _, key := range sortedKeys(fields) {
		body += "\n" + styles.RenderField(key, stringify(fields[key]))
	}
	formatter.Printf("%s\n", styles.RenderCard(body))
	return nil
}

func stringify(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case string:
		return val
	case nil:
		return "-"
	default:
		data, _ := json.Marshal(val)
		return string(data)
	}
}
