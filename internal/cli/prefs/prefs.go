package prefs

import (
	"github.com/spf13/cobra"
)

// PrefsCmd returns the prefs parent command
func PrefsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Board preferences",
	}

	cmd.AddCommand(SetCmd())
	cmd.AddCommand(ShowCmd())

	return cmd
}
