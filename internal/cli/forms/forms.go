// Package forms builds the interactive huh forms of the CLI. Every field is
// checked against the same validation the backend request goes through, so
// a bad value is reported next to the field that holds it.
package forms

import (
	"context"
	"errors"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// Run shows form on the terminal and blocks until it is completed or
// aborted. Tests replace it to skip the terminal.
var Run = func(ctx context.Context, form *huh.Form) error {
	return form.RunWithContext(ctx)
}

// Choice is one option of a reference field
type Choice struct {
	ID    int
	Label string
}

// ChoicesOf lists the records of a typed catalog as options
func ChoicesOf[T models.Record](ctx context.Context, cat *api.Catalog[T]) ([]Choice, error) {
	records, err := cat.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Choice, 0, len(records))
	for _, r := range records {
		out = append(out, Choice{ID: r.RecordKey(), Label: r.DisplayName()})
	}
	return out, nil
}

// AthleteChoices lists athletes by full name
func AthleteChoices(athletes []*models.Athlete) []Choice {
	out := make([]Choice, 0, len(athletes))
	for _, a := range athletes {
		out = append(out, Choice{ID: a.ID.ToInt(), Label: a.FullName()})
	}
	return out
}

func options(choices []Choice) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(choices))
	for _, c := range choices {
		opts = append(opts, huh.NewOption(c.Label, c.ID))
	}
	return opts
}

// messageFor returns the first validation message of field in err, or nil
func messageFor(err error, field string) error {
	var errs validation.Errors
	if !errors.As(err, &errs) {
		return nil
	}
	if msg, ok := errs.Fields()[field]; ok {
		return errors.New(msg)
	}
	return nil
}

// fieldTitle turns "sports_group_id" into "Sports group"
func fieldTitle(key string) string {
	title := strings.ReplaceAll(strings.TrimSuffix(key, "_id"), "_", " ")
	if title == "" {
		return key
	}
	return strings.ToUpper(title[:1]) + title[1:]
}
