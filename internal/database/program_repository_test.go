package database

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/types"
)

func TestProgramRepo_ListOrdersMembersByPosition(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a := createTestAthlete(t, repo, "Ana")
	b := createTestAthlete(t, repo, "Bruno")
	c := createTestAthlete(t, repo, "Carla")
	strength := createTestProgram(t, repo, "Fuerza")
	rehab := createTestProgram(t, repo, "Rehab")

	require.NoError(t, repo.AssignAthlete(ctx, a, strength, 0))
	require.NoError(t, repo.AssignAthlete(ctx, b, strength, 0))
	require.NoError(t, repo.AssignAthlete(ctx, c, strength, 1))

	programs, err := repo.ListPrograms(ctx)
	require.NoError(t, err)
	require.Len(t, programs, 2)
	assert.Equal(t, "Fuerza", programs[0].Name)
	assert.Equal(t, []types.AthleteID{b, c, a}, programs[0].AthleteIDs)
	assert.Equal(t, rehab, programs[1].ID)
	assert.NotNil(t, programs[1].AthleteIDs)
	assert.Empty(t, programs[1].AthleteIDs)
}

func TestProgramRepo_AssignMovesBetweenPrograms(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a := createTestAthlete(t, repo, "Ana")
	b := createTestAthlete(t, repo, "Bruno")
	c := createTestAthlete(t, repo, "Carla")
	from := createTestProgram(t, repo, "A")
	to := createTestProgram(t, repo, "B")

	for i, id := range []types.AthleteID{a, b, c} {
		require.NoError(t, repo.AssignAthlete(ctx, id, from, i))
	}

	require.NoError(t, repo.AssignAthlete(ctx, a, to, 5))
	assert.Equal(t, []types.AthleteID{b, c}, membersOf(t, repo, from))
	assert.Equal(t, []types.AthleteID{a}, membersOf(t, repo, to))

	// reorder inside one program
	require.NoError(t, repo.AssignAthlete(ctx, c, from, 0))
	assert.Equal(t, []types.AthleteID{c, b}, membersOf(t, repo, from))

	// clear assignment
	require.NoError(t, repo.AssignAthlete(ctx, b, 0, 0))
	assert.Equal(t, []types.AthleteID{c}, membersOf(t, repo, from))
}

func TestProgramRepo_AssignUnknown(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	a := createTestAthlete(t, repo, "Ana")
	p := createTestProgram(t, repo, "A")

	err := repo.AssignAthlete(ctx, 999, p, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown athlete, got %v", err)
	}
	err = repo.AssignAthlete(ctx, a, 999, 0)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown program, got %v", err)
	}
	assert.Empty(t, membersOf(t, repo, p))
}

func TestAthleteRepo_CreateAndGet(t *testing.T) {
	repo := NewRepository(setupTestDB(t))
	ctx := context.Background()

	photo := "https://img.example/ana.jpg"
	id := createTestAthlete(t, repo, "Ana")
	got, err := repo.GetAthlete(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "Ana", got.FirstName)
	assert.Nil(t, got.PhotoURL)

	_, err = repo.GetAthlete(ctx, 42)
	assert.ErrorIs(t, err, ErrNotFound)

	with := *got
	with.PhotoURL = &photo
	created, err := repo.CreateAthlete(ctx, &with)
	require.NoError(t, err)
	loaded, err := repo.GetAthlete(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.PhotoURL)
	assert.Equal(t, photo, *loaded.PhotoURL)
}
