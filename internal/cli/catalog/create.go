package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"charm.land/huh/v2"
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/cli/forms"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// CreateCmd returns the catalog create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <resource>",
		Short: "Create a record",
		Long: `Create a catalog record from field flags. key=value sets a string,
key:=value sets a raw JSON value such as a number.

Examples:
  plantel catalog create sports --field name=Boxeo
  plantel catalog create consulting-rooms --field name="Consultorio 3" --field floor:=2 --field capacity:=4

  # Fill the fields in a form; --field values prefill it
  plantel catalog create sports-groups --interactive --field name="Natación juvenil"

  # Quiet mode for bash capture
  ROOM_ID=$(plantel catalog create consulting-rooms --field name=Sala --field capacity:=1 --quiet)
`,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: resourceArg,
		RunE:              runCreate,
	}

	cmd.Flags().StringArray("field", nil, "Field as key=value or key:=json (repeatable)")
	cmd.Flags().BoolP("interactive", "i", false, "Fill the record in a form, checking each field as it is entered")
	cli.AddOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	formatter := cli.FormatterFor(cmd)
	resource := args[0]
	pairs, _ := cmd.Flags().GetStringArray("field")
	interactive, _ := cmd.Flags().GetBool("interactive")

	if interactive && (formatter.JSON || formatter.Quiet) {
		return formatter.Fail(&cli.ExitError{
			Code: cli.ExitUsage,
			Err:  errors.New("--interactive cannot be combined with --json or --quiet"),
		})
	}

	fields, err := cli.ParseFields(pairs)
	if err != nil {
		return formatter.Fail(&cli.ExitError{Code: cli.ExitUsage, Err: err})
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return formatter.Fail(err)
	}

	var record models.Record
	if interactive {
		record, err = askRecord(ctx, cliInstance, resource, fields)
	} else {
		record, err = recordFromFields(resource, fields)
	}
	if err != nil {
		return formatter.FailWithSuggestion(err, fieldHint(err))
	}

	records, err := cliInstance.Client.Records(resource)
	if err != nil {
		return formatter.Fail(err)
	}

	created, err := records.Create(ctx, record)
	if err != nil {
		return formatter.FailWithSuggestion(err, fieldHint(err))
	}

	if formatter.Quiet || formatter.JSON {
		return formatter.Success(created)
	}
	formatter.Printf("Created %s '%s' (ID: %d)\n", resource, created.DisplayName(), created.RecordKey())
	return nil
}

func recordFromFields(resource string, fields map[string]any) (models.Record, error) {
	record, err := models.NewRecord(resource)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, record); err != nil {
		return nil, &cli.ExitError{Code: cli.ExitDataErr, Err: fmt.Errorf("fields do not fit %s: %w", resource, err)}
	}
	return record, nil
}

// askRecord shows the record form prefilled with fields
func askRecord(ctx context.Context, c *cli.CLI, resource string, fields map[string]any) (models.Record, error) {
	choices, err := referenceChoices(ctx, c.Client, resource)
	if err != nil {
		return nil, err
	}
	form, err := forms.NewRecordForm(resource, choices)
	if err != nil {
		if errors.Is(err, forms.ErrNotEditable) {
			return nil, &cli.ExitError{Code: cli.ExitUsage, Err: err}
		}
		return nil, err
	}
	for key, value := range fields {
		if err := form.Set(key, fmt.Sprint(value)); err != nil {
			return nil, &cli.ExitError{Code: cli.ExitUsage, Err: err}
		}
	}

	if err := forms.Run(ctx, form.Form(forms.Theme(c.Config.ColorScheme))); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, &cli.ExitError{Code: cli.ExitFailure, Err: errors.New("create cancelled")}
		}
		return nil, err
	}
	return form.Record()
}

// referenceChoices loads the records a resource's id fields point at
func referenceChoices(ctx context.Context, client *api.Client, resource string) (map[string][]forms.Choice, error) {
	out := map[string][]forms.Choice{}
	var err error
	switch resource {
	case models.ResourceSportsGroups:
		if out["sport_id"], err = forms.ChoicesOf(ctx, client.Sports()); err != nil {
			return nil, err
		}
		if out["category_id"], err = forms.ChoicesOf(ctx, client.Categories()); err != nil {
			return nil, err
		}
	case models.ResourceSchedules:
		if out["sports_group_id"], err = forms.ChoicesOf(ctx, client.SportsGroups()); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// fieldHint lists the offending fields of a validation error
func fieldHint(err error) string {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return ""
	}
	fields := errs.Fields()
	return fmt.Sprintf("Check the fields: %v", sortedKeys(fields))
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
