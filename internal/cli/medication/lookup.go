package medication

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/styles"
)

// LookupCmd returns the medication lookup subcommand
func LookupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lookup <brand name>",
		Short: "Look up a medication by brand name",
		Long: `Search drug labels by brand name. Purpose and warnings are translated
to Spanish when services.translation_url is configured.

Examples:
  plantel medication lookup advil
  plantel medication lookup "tylenol pm" --json
`,
		Args: cobra.MinimumNArgs(1),
		RunE: runLookup,
	}

	cli.AddOutputFlags(cmd)

	return cmd
}

func runLookup(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	name := strings.Join(args, " ")

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	meds, err := cliInstance.Client.LookupMedication(ctx, name)
	if err != nil {
		return formatter.FailWithSuggestion(err, "Set services.medication_url in your config")
	}

	if formatter.JSON {
		return formatter.JSONResult("medications", meds)
	}
	if formatter.Quiet {
		for _, m := range meds {
			formatter.Printf("%s\n", m.BrandName)
		}
		return nil
	}

	if len(meds) == 0 {
		formatter.Printf("No medications found for '%s'\n", name)
		return nil
	}

	for _, m := range meds {
		body := styles.TitleStyle.Render(m.BrandName)
		if m.GenericName != "" {
			body += " " + styles.SubtitleStyle.Render("("+m.GenericName+")")
		}
		if m.Purpose != "" {
			body += "\n\n" + styles.RenderField("Purpose", m.Purpose)
		}
		if m.Warnings != "" {
			body += "\n\n" + styles.RenderField("Warnings", m.Warnings)
		}
		if !m.Translated {
			body += "\n\n" + styles.SubtitleStyle.Render("untranslated")
		}
		formatter.Printf("%s\n", styles.RenderCard(body))
	}
	return nil
}
