package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// AppointmentRepo handles all appointment-related database operations.
type AppointmentRepo struct {
	db *sql.DB
}

const appointmentColumns = `id, athlete_id, consulting_room_id, responsible_id, area, starts_at, duration_minutes, status, notes`

func scanAppointment(row rowScanner) (*models.Appointment, error) {
	a := &models.Appointment{}
	var startsAt, status string
	if err := row.Scan(&a.ID, &a.AthleteID, &a.ConsultingRoomID, &a.ResponsibleID, &a.Area,
		&startsAt, &a.DurationMinutes, &status, &a.Notes); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339, startsAt)
	if err != nil {
		return nil, fmt.Errorf("invalid starts_at %q: %w", startsAt, err)
	}
	a.StartsAt = t
	a.Status = models.AppointmentStatus(status)
	return a, nil
}

// ListAppointments returns every appointment ordered by start time
func (r *AppointmentRepo) ListAppointments(ctx context.Context) ([]*models.Appointment, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments ORDER BY starts_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query appointments: %w", err)
	}
	defer rows.Close()

	out := make([]*models.Appointment, 0)
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// GetAppointment returns one appointment
func (r *AppointmentRepo) GetAppointment(ctx context.Context, id types.AppointmentID) (*models.Appointment, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments WHERE id = ?`, id.ToInt())
	a, err := scanAppointment(row)
	if err != nil {
		return nil, notFound(err, "appointment", id.ToInt())
	}
	return a, nil
}

// CreateAppointment books a. It fails with ErrSlotTaken when the room is
// already booked for an overlapping, non-cancelled slot.
func (r *AppointmentRepo) CreateAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error) {
	created := *a
	if created.Status == "" {
		created.Status = models.StatusScheduled
	}
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkSlot(ctx, tx, &created); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx,
			`INSERT INTO appointments (athlete_id, consulting_room_id, responsible_id, area, starts_at, duration_minutes, status, notes)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			created.AthleteID.ToInt(), created.ConsultingRoomID.ToInt(), created.ResponsibleID.ToInt(), created.Area,
			created.StartsAt.UTC().Format(time.RFC3339), created.DurationMinutes, string(created.Status), created.Notes)
		if err != nil {
			return fmt.Errorf("failed to insert appointment: %w", err)
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		created.ID = types.AppointmentIDFromInt(int(id))
		return nil
	})
	if err != nil {
		return nil, err
	}
	created.StartsAt = created.StartsAt.UTC()
	return &created, nil
}

// UpdateAppointment replaces a stored appointment
func (r *AppointmentRepo) UpdateAppointment(ctx context.Context, a *models.Appointment) (*models.Appointment, error) {
	updated := *a
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := checkSlot(ctx, tx, &updated); err != nil {
			return err
		}
		result, err := tx.ExecContext(ctx,
			`UPDATE appointments SET athlete_id = ?, consulting_room_id = ?, responsible_id = ?, area = ?,
			 starts_at = ?, duration_minutes = ?, status = ?, notes = ? WHERE id = ?`,
			updated.AthleteID.ToInt(), updated.ConsultingRoomID.ToInt(), updated.ResponsibleID.ToInt(), updated.Area,
			updated.StartsAt.UTC().Format(time.RFC3339), updated.DurationMinutes, string(updated.Status), updated.Notes,
			updated.ID.ToInt())
		if err != nil {
			return fmt.Errorf("failed to update appointment: %w", err)
		}
		if n, _ := result.RowsAffected(); n == 0 {
			return fmt.Errorf("appointment %d: %w", updated.ID, ErrNotFound)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	updated.StartsAt = updated.StartsAt.UTC()
	return &updated, nil
}

// DeleteAppointment removes one appointment
func (r *AppointmentRepo) DeleteAppointment(ctx context.Context, id types.AppointmentID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = ?`, id.ToInt())
	if err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	if n, _ := result.RowsAffected(); n == 0 {
		return fmt.Errorf("appointment %d: %w", id, ErrNotFound)
	}
	return nil
}

// checkSlot rejects a when another active appointment overlaps it in the
// same room. Cancelled appointments free their slot.
func checkSlot(ctx context.Context, tx *sql.Tx, a *models.Appointment) error {
	if a.Status == models.StatusCancelled {
		return nil
	}
	rows, err := tx.QueryContext(ctx,
		`SELECT `+appointmentColumns+` FROM appointments
		 WHERE consulting_room_id = ? AND id != ? AND status != ?`,
		a.ConsultingRoomID.ToInt(), a.ID.ToInt(), string(models.StatusCancelled))
	if err != nil {
		return fmt.Errorf("failed to check slot: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		other, err := scanAppointment(rows)
		if err != nil {
			return err
		}
		if a.Overlaps(other) {
			return fmt.Errorf("appointment %d: %w", other.ID, ErrSlotTaken)
		}
	}
	return rows.Err()
}
