// Package catalog holds the generic CRUD commands for catalog resources
package catalog

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/models"
)

// CatalogCmd returns the catalog parent command
func CatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Manage catalog records",
		Long: "Manage catalog records. Resources: " +
			strings.Join(append(append([]string{}, models.CatalogResources...), models.ResourceAppointments), ", "),
	}

	cmd.AddCommand(ListCmd())
	cmd.AddCommand(GetCmd())
	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// resourceArg completes resource names for the shell
func resourceArg(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return append(append([]string{}, models.CatalogResources...), models.ResourceAppointments), cobra.ShellCompDirectiveNoFileComp
}
