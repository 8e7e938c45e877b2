package program

import (
	"github.com/spf13/cobra"
)

// ProgramCmd returns the program parent command
func ProgramCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "program",
		Short: "Browse programs",
	}

	cmd.AddCommand(ListCmd())

	return cmd
}
