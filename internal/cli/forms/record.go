package forms

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/plantel/internal/models"
)

// ErrNotEditable is returned for resources that have a form of their own
var ErrNotEditable = errors.New("resource has no generic form")

type recordField struct {
	name    string
	number  bool
	text    string
	pick    int
	choices []Choice
}

// RecordForm collects the fields of one catalog record
type RecordForm struct {
	resource string
	fields   []recordField
}

// NewRecordForm lists the editable fields of resource in declaration order.
// Number fields with choices become selects.
func NewRecordForm(resource string, choices map[string][]Choice) (*RecordForm, error) {
	if resource == models.ResourceAppointments {
		return nil, fmt.Errorf("%w: %s (use 'plantel appointment book --interactive')", ErrNotEditable, resource)
	}
	rec, err := models.NewRecord(resource)
	if err != nil {
		return nil, err
	}

	f := &RecordForm{resource: resource}
	typ := reflect.TypeOf(rec).Elem()
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "" || name == "-" || name == "id" {
			continue
		}
		field := recordField{name: name}
		switch sf.Type.Kind() {
		case reflect.Int, reflect.Int32, reflect.Int64:
			field.number = true
			field.choices = choices[name]
		}
		f.fields = append(f.fields, field)
	}
	return f, nil
}

func (f *RecordForm) field(key string) *recordField {
	for i := range f.fields {
		if f.fields[i].name == key {
			return &f.fields[i]
		}
	}
	return nil
}

// Set fills key before the form is shown
func (f *RecordForm) Set(key, value string) error {
	field := f.field(key)
	if field == nil {
		return fmt.Errorf("%s has no field '%s'", f.resource, key)
	}
	if len(field.choices) > 0 {
		id, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("field '%s' takes an id, got '%s'", key, value)
		}
		field.pick = id
		return nil
	}
	field.text = value
	return nil
}

// Check validates value as the content of key, with every other field as
// currently filled, and returns only the message that belongs to key
func (f *RecordForm) Check(key, value string) error {
	rec, err := f.build(key, value, false)
	if err != nil {
		return messageFor(err, key)
	}
	return messageFor(rec.Validate(), key)
}

// Record returns the filled record, validated as a whole
func (f *RecordForm) Record() (models.Record, error) {
	rec, err := f.build("", "", true)
	if err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	return rec, nil
}

// build decodes the fields into a record, with value standing in for key.
// Unless strict, numbers that do not parse on other fields count as zero.
func (f *RecordForm) build(key, value string, strict bool) (models.Record, error) {
	values := make(map[string]any, len(f.fields))
	for _, field := range f.fields {
		text := field.text
		if len(field.choices) > 0 {
			text = strconv.Itoa(field.pick)
		}
		if field.name == key {
			text = value
		}
		if !field.number {
			values[field.name] = text
			continue
		}
		n, err := parseNumber(text)
		if err != nil && (strict || field.name == key) {
			return nil, validationError(field.name, "must be a whole number")
		}
		values[field.name] = n
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	rec, err := models.NewRecord(f.resource)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("fields do not fit %s: %w", f.resource, err)
	}
	return rec, nil
}

// Form builds the huh form over the record's fields
func (f *RecordForm) Form(theme huh.Theme) *huh.Form {
	fields := make([]huh.Field, 0, len(f.fields))
	for i := range f.fields {
		field := &f.fields[i]
		if len(field.choices) > 0 {
			fields = append(fields,
				huh.NewSelect[int]().
					Key(field.name).
					Title(fieldTitle(field.name)).
					Options(options(field.choices)...).
					Value(&field.pick).
					Validate(func(id int) error { return f.Check(field.name, strconv.Itoa(id)) }),
			)
			continue
		}
		fields = append(fields,
			huh.NewInput().
				Key(field.name).
				Title(fieldTitle(field.name)).
				Value(&field.text).
				Validate(func(s string) error { return f.Check(field.name, s) }),
		)
	}
	return huh.NewForm(huh.NewGroup(fields...)).WithTheme(theme)
}

func parseNumber(text string) (int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, nil
	}
	return strconv.Atoi(text)
}
