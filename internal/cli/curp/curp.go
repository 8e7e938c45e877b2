package curp

import (
	"github.com/spf13/cobra"
)

// CURPCmd returns the curp parent command
func CURPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curp",
		Short: "Population registry key (CURP) tools",
	}

	cmd.AddCommand(ValidateCmd())

	return cmd
}
