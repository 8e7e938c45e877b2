package prefs

import (
	"slices"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// SetCmd returns the prefs set subcommand
func SetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Change board preferences",
		Long: `Change board preferences and save them to the config file.

Examples:
  plantel prefs set --density=compact
  plantel prefs set --hide=3 --pin=1
  plantel prefs set --show=3 --unpin=1
`,
		RunE: runSet,
	}

	cmd.Flags().String("density", "", "Card density: comfortable or compact")
	cmd.Flags().IntSlice("hide", nil, "Program IDs to hide")
	cmd.Flags().IntSlice("show", nil, "Program IDs to show again")
	cmd.Flags().IntSlice("pin", nil, "Program IDs to pin to the left")
	cmd.Flags().IntSlice("unpin", nil, "Program IDs to unpin")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runSet(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)

	density, _ := cmd.Flags().GetString("density")
	hide, _ := cmd.Flags().GetIntSlice("hide")
	show, _ := cmd.Flags().GetIntSlice("show")
	pin, _ := cmd.Flags().GetIntSlice("pin")
	unpin, _ := cmd.Flags().GetIntSlice("unpin")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	// The unassigned column (id 0) is always shown and always first
	var errs validation.Errors
	for flag, ids := range map[string][]int{"hide": hide, "show": show, "pin": pin, "unpin": unpin} {
		for _, id := range ids {
			errs.Add(validation.PositiveID(flag, id))
		}
	}
	if err := errs.Err(); err != nil {
		return formatter.Fail(err)
	}

	prefs := &cliInstance.Config.Preferences
	if density != "" {
		if err := prefs.SetDensity(density); err != nil {
			return formatter.Fail(err)
		}
	}
	for _, id := range hide {
		if !prefs.IsHidden(id) {
			prefs.ToggleHidden(id)
		}
	}
	for _, id := range show {
		if prefs.IsHidden(id) {
			prefs.ToggleHidden(id)
		}
	}
	for _, id := range pin {
		if !prefs.IsPinned(id) {
			prefs.TogglePinned(id)
		}
	}
	for _, id := range unpin {
		if prefs.IsPinned(id) {
			prefs.TogglePinned(id)
		}
	}
	slices.Sort(prefs.HiddenColumns)

	if err := cliInstance.Config.Save(); err != nil {
		return formatter.Fail(err)
	}

	return printPrefs(formatter, *prefs)
}

func printPrefs(formatter *cli.OutputFormatter, prefs config.Preferences) error {
	if formatter.JSON {
		return formatter.JSONResult("preferences", prefs)
	}
	formatter.Printf("density: %s\n", prefs.Density)
	formatter.Printf("hidden:  %v\n", prefs.HiddenColumns)
	formatter.Printf("pinned:  %v\n", prefs.PinnedColumns)
	return nil
}
