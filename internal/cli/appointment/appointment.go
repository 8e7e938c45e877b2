package appointment

import (
	"github.com/spf13/cobra"
)

// AppointmentCmd returns the appointment parent command
func AppointmentCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "appointment",
		Short: "Book and update appointments",
	}

	cmd.AddCommand(BookCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}
