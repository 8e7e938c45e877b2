package forms

import (
	"strconv"

	"charm.land/huh/v2"
	"github.com/thenoetrevino/plantel/internal/api"
	"github.com/thenoetrevino/plantel/internal/cli"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// Booking holds the answers of the booking form. Field keys are the JSON
// names of models.Appointment.
type Booking struct {
	AthleteID     int
	RoomID        int
	ResponsibleID int
	Area          string
	At            string
	Duration      string
	Notes         string
}

func validationError(field, message string) error {
	return validation.Errors{{Field: field, Message: message}}
}

// appointment converts the answers. Unless strict, a bad date or duration
// is left zero so the other fields can still be checked.
func (b Booking) appointment(strict bool) (*models.Appointment, error) {
	appt := &models.Appointment{
		AthleteID:        types.AthleteIDFromInt(b.AthleteID),
		ConsultingRoomID: types.CatalogIDFromInt(b.RoomID),
		ResponsibleID:    types.CatalogIDFromInt(b.ResponsibleID),
		Area:             b.Area,
		Notes:            b.Notes,
		Status:           models.StatusScheduled,
	}
	if startsAt, err := cli.ParseDateTime(b.At); err == nil {
		appt.StartsAt = startsAt
	} else if strict {
		return nil, validationError("starts_at", err.Error())
	}
	if duration, err := parseNumber(b.Duration); err == nil {
		appt.DurationMinutes = duration
	} else if strict {
		return nil, validationError("duration_minutes", "must be a whole number")
	}
	return appt, nil
}

// Check validates value as the answer to key and returns only its message
func (b *Booking) Check(key, value string) error {
	next := *b
	switch key {
	case "athlete_id", "consulting_room_id", "responsible_id":
		id, _ := strconv.Atoi(value)
		switch key {
		case "athlete_id":
			next.AthleteID = id
		case "consulting_room_id":
			next.RoomID = id
		default:
			next.ResponsibleID = id
		}
	case "area":
		next.Area = value
	case "starts_at":
		if _, err := cli.ParseDateTime(value); err != nil {
			return err
		}
		next.At = value
	case "duration_minutes":
		if _, err := parseNumber(value); err != nil {
			return messageFor(validationError(key, "must be a whole number"), key)
		}
		next.Duration = value
	}

	appt, err := next.appointment(false)
	if err != nil {
		return err
	}
	return messageFor(appt.Validate(), key)
}

// Request returns the booking request, validated as a whole
func (b *Booking) Request() (api.BookingRequest, error) {
	appt, err := b.appointment(true)
	if err != nil {
		return api.BookingRequest{}, err
	}
	if err := appt.Validate(); err != nil {
		return api.BookingRequest{}, err
	}
	return api.BookingRequest{
		AthleteID:        appt.AthleteID,
		ConsultingRoomID: appt.ConsultingRoomID,
		ResponsibleID:    appt.ResponsibleID,
		Area:             appt.Area,
		StartsAt:         appt.StartsAt,
		DurationMinutes:  appt.DurationMinutes,
		Notes:            appt.Notes,
	}, nil
}

// BookingForm builds the booking form. Selects list athletes, rooms and
// responsibles by name.
func BookingForm(b *Booking, athletes, rooms, responsibles []Choice, theme huh.Theme) *huh.Form {
	pick := func(key, title string, choices []Choice, value *int) huh.Field {
		return huh.NewSelect[int]().
			Key(key).
			Title(title).
			Options(options(choices)...).
			Value(value).
			Validate(func(id int) error { return b.Check(key, strconv.Itoa(id)) })
	}
	input := func(key, title, placeholder string, value *string) huh.Field {
		return huh.NewInput().
			Key(key).
			Title(title).
			Placeholder(placeholder).
			Value(value).
			Validate(func(s string) error { return b.Check(key, s) })
	}

	return huh.NewForm(
		huh.NewGroup(
			pick("athlete_id", "Athlete", athletes, &b.AthleteID),
			pick("consulting_room_id", "Consulting room", rooms, &b.RoomID),
			pick("responsible_id", "Responsible", responsibles, &b.ResponsibleID),
		),
		huh.NewGroup(
			input("area", "Area", "Nutrición, Fisioterapia...", &b.Area),
			input("starts_at", "Starts at", "YYYY-MM-DD HH:MM", &b.At),
			input("duration_minutes", "Duration (minutes)", "45", &b.Duration),
			huh.NewText().
				Key("notes").
				Title("Notes").
				CharLimit(500).
				Value(&b.Notes),
		),
	).WithTheme(theme)
}
