package medication

import (
	"github.com/spf13/cobra"
)

// MedicationCmd returns the medication parent command
func MedicationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "medication",
		Short: "Drug label lookups",
	}

	cmd.AddCommand(LookupCmd())

	return cmd
}
