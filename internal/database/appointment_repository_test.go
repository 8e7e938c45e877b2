package database

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/models"
)

func TestAppointmentRepo_CreateAndOverlap(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()
	athlete := createTestAthlete(t, repo, "Ana")

	first, err := repo.CreateAppointment(ctx, &models.Appointment{
		AthleteID: athlete, ConsultingRoomID: 1, ResponsibleID: 1,
		Area: "Nutrición", StartsAt: at(2, 9), DurationMinutes: 60,
	})
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, first.Status)

	got, err := repo.GetAppointment(ctx, first.ID)
	require.NoError(t, err)
	assert.True(t, got.StartsAt.Equal(at(2, 9)))

	_, err = repo.CreateAppointment(ctx, &models.Appointment{
		AthleteID: athlete, ConsultingRoomID: 1, ResponsibleID: 2,
		Area: "Psicología", StartsAt: at(2, 9).Add(30 * time.Minute), DurationMinutes: 30,
	})
	assert.ErrorIs(t, err, ErrSlotTaken)

	// another room is free
	_, err = repo.CreateAppointment(ctx, &models.Appointment{
		AthleteID: athlete, ConsultingRoomID: 2, ResponsibleID: 2,
		Area: "Psicología", StartsAt: at(2, 9), DurationMinutes: 30,
	})
	require.NoError(t, err)

	// cancelling frees the slot
	got.Status = models.StatusCancelled
	_, err = repo.UpdateAppointment(ctx, got)
	require.NoError(t, err)
	_, err = repo.CreateAppointment(ctx, &models.Appointment{
		AthleteID: athlete, ConsultingRoomID: 1, ResponsibleID: 2,
		Area: "Psicología", StartsAt: at(2, 9), DurationMinutes: 30,
	})
	require.NoError(t, err)

	list, err := repo.ListAppointments(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 3)
}

func TestAppointmentRepo_DeleteMissing(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	err := repo.DeleteAppointment(context.Background(), 77)
	assert.ErrorIs(t, err, ErrNotFound)
}
