package athlete

import (
	"github.com/spf13/cobra"
)

// AthleteCmd returns the athlete parent command
func AthleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "athlete",
		Short: "Browse athletes",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
