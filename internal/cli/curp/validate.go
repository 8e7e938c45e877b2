package curp

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// ValidateCmd returns the curp validate subcommand
func ValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <curp>",
		Short: "Validate a CURP",
		Long: `Check the format and check digit of a CURP. When services.curp_url is
configured the key is also looked up in the registry service.

Examples:
  plantel curp validate GODE561231HDFRRN00
  plantel curp validate gode561231hdfrrn00 --local
  plantel curp validate GODE561231HDFRRN00 --json
`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}

	cmd.Flags().Bool("local", false, "Only run the offline format check")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	local, _ := cmd.Flags().GetBool("local")

	if err := validation.CURP(args[0]); err != nil {
		return formatter.Fail(err)
	}
	result := &models.CURPResult{CURP: validation.NormalizeCURP(args[0]), Valid: true}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	remote := !local && cliInstance.Client.CURPURL != ""
	if remote {
		result, err = cliInstance.Client.ValidateCURP(ctx, args[0])
		if err != nil {
			return formatter.Fail(err)
		}
	}

	if formatter.JSON {
		return formatter.JSONResult("curp", result)
	}
	if !result.Valid {
		formatter.Printf("%s %s\n", styles.ErrorStyle.Render("INVALID"), result.CURP)
		if result.Message != "" {
			formatter.Printf("  %s\n", result.Message)
		}
		return &cli.ExitError{Code: cli.ExitValidation, Err: validation.ErrInvalid, Reported: true}
	}
	if formatter.Quiet {
		formatter.Printf("%s\n", result.CURP)
		return nil
	}

	formatter.Printf("%s %s\n", styles.SuccessStyle.Render("VALID"), result.CURP)
	if result.FullName != "" {
		formatter.Printf("  %s\n", styles.RenderField("Name", result.FullName))
	}
	if result.BirthDate != "" {
		formatter.Printf("  %s\n", styles.RenderField("Born", result.BirthDate))
	}
	if !remote {
		formatter.Printf("  %s\n", styles.SubtitleStyle.Render("registry lookup skipped"))
	}
	return nil
}
