package api

import (
	"context"
	"fmt"
	"time"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// BookingRequest describes a new appointment
type BookingRequest struct {
	AthleteID        types.AthleteID
	ConsultingRoomID types.CatalogID
	ResponsibleID    types.CatalogID
	Area             string
	StartsAt         time.Time
	DurationMinutes  int
	Notes            string
}

// BookAppointment validates the request and creates a scheduled appointment
func (c *Client) BookAppointment(ctx context.Context, req BookingRequest) (*models.Appointment, error) {
	appt := &models.Appointment{
		AthleteID:        req.AthleteID,
		ConsultingRoomID: req.ConsultingRoomID,
		ResponsibleID:    req.ResponsibleID,
		Area:             req.Area,
		StartsAt:         req.StartsAt,
		DurationMinutes:  req.DurationMinutes,
		Status:           models.StatusScheduled,
		Notes:            req.Notes,
	}
	created, err := c.Appointments().Create(ctx, appt)
	if err != nil {
		return nil, fmt.Errorf("failed to book appointment: %w", err)
	}
	return created, nil
}

// SetAppointmentStatus fetches the appointment and stores it with a new status
func (c *Client) SetAppointmentStatus(ctx context.Context, id types.AppointmentID, status models.AppointmentStatus) (*models.Appointment, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %s", models.ErrInvalidStatus, status)
	}
	appts := c.Appointments()
	appt, err := appts.Get(ctx, id.ToInt())
	if err != nil {
		return nil, err
	}
	appt.Status = status
	return appts.Update(ctx, appt)
}
