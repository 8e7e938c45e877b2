package prefs

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
)

// ShowCmd returns the prefs show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print board preferences",
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	formatter := cli.FormatterFor(cmd)

	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return formatter.Fail(err)
	}
	return printPrefs(formatter, cliInstance.Config.Preferences)
}
