package models

import (
	"fmt"
	"time"

	"github.com/thenoetrevino/plantel/internal/types"
	"github.com/thenoetrevino/plantel/internal/validation"
)

// Appointment is a booked visit of an athlete to a consulting room
type Appointment struct {
	ID               types.AppointmentID `json:"id"`
	AthleteID        types.AthleteID     `json:"athlete_id"`
	ConsultingRoomID types.CatalogID     `json:"consulting_room_id"`
	ResponsibleID    types.CatalogID     `json:"responsible_id"`
	Area             string              `json:"area"`
	StartsAt         time.Time           `json:"starts_at"`
	DurationMinutes  int                 `json:"duration_minutes"`
	Status           AppointmentStatus   `json:"status"`
	Notes            string              `json:"notes,omitempty"`
}

func (a *Appointment) RecordKey() int      { return a.ID.ToInt() }
func (a *Appointment) SetRecordKey(id int) { a.ID = types.AppointmentIDFromInt(id) }

func (a *Appointment) DisplayName() string {
	return fmt.Sprintf("%s %s", a.StartsAt.Format("2006-01-02 15:04"), a.Area)
}

// EndsAt is the end of the booked slot
func (a *Appointment) EndsAt() time.Time {
	return a.StartsAt.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// Overlaps reports whether both appointments share the same room at the same time
func (a *Appointment) Overlaps(other *Appointment) bool {
	if a.ConsultingRoomID != other.ConsultingRoomID {
		return false
	}
	return a.StartsAt.Before(other.EndsAt()) && other.StartsAt.Before(a.EndsAt())
}

func (a *Appointment) Validate() error {
	var errs validation.Errors
	errs.Add(validation.PositiveID("athlete_id", a.AthleteID.ToInt()))
	errs.Add(validation.PositiveID("consulting_room_id", a.ConsultingRoomID.ToInt()))
	errs.Add(validation.PositiveID("responsible_id", a.ResponsibleID.ToInt()))
	errs.Add(validation.Required("area", a.Area))
	errs.Add(validation.IntRange("duration_minutes", a.DurationMinutes, 10, 240))
	if a.StartsAt.IsZero() {
		errs.Add(&validation.FieldError{Field: "starts_at", Message: "is required"})
	}
	if a.Status != "" && !a.Status.Valid() {
		errs.Add(&validation.FieldError{Field: "status", Message: ErrInvalidStatus.Error()})
	}
	return errs.Err()
}
