package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	// every connection to :memory: is a separate database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}
	return db
}

// ============================================================================
// TEST DATA HELPERS
// ============================================================================

func createTestAthlete(t *testing.T, repo *Repository, firstName string) types.AthleteID {
	t.Helper()
	a, err := repo.CreateAthlete(context.Background(), &models.Athlete{FirstName: firstName, LastName: "Test"})
	if err != nil {
		t.Fatalf("Failed to create athlete: %v", err)
	}
	return a.ID
}

func createTestProgram(t *testing.T, repo *Repository, name string) types.ProgramID {
	t.Helper()
	p, err := repo.CreateProgram(context.Background(), name, "")
	if err != nil {
		t.Fatalf("Failed to create program: %v", err)
	}
	return p.ID
}

func membersOf(t *testing.T, repo *Repository, program types.ProgramID) []types.AthleteID {
	t.Helper()
	programs, err := repo.ListPrograms(context.Background())
	if err != nil {
		t.Fatalf("Failed to list programs: %v", err)
	}
	for _, p := range programs {
		if p.ID == program {
			return p.AthleteIDs
		}
	}
	t.Fatalf("program %d not found", program)
	return nil
}

func at(day, hour int) time.Time {
	return time.Date(2026, time.March, day, hour, 0, 0, 0, time.UTC)
}
