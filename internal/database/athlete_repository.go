package database

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// AthleteRepo handles all athlete-related database operations.
type AthleteRepo struct {
	db *sql.DB
}

const athleteColumns = `id, first_name, last_name, second_last_name, photo_url, age, category, sport, curp`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAthlete(row rowScanner) (*models.Athlete, error) {
	a := &models.Athlete{}
	var photo sql.NullString
	if err := row.Scan(&a.ID, &a.FirstName, &a.LastName, &a.SecondLastName, &photo, &a.Age, &a.Category, &a.Sport, &a.CURP); err != nil {
		return nil, err
	}
	a.PhotoURL = nullStringToPtr(photo)
	return a, nil
}

// ListAthletes returns every athlete ordered by id
func (r *AthleteRepo) ListAthletes(ctx context.Context) ([]*models.Athlete, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+athleteColumns+` FROM athletes ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query athletes: %w", err)
	}
	defer rows.Close()

	athletes := make([]*models.Athlete, 0)
	for rows.Next() {
		a, err := scanAthlete(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan athlete: %w", err)
		}
		athletes = append(athletes, a)
	}
	return athletes, rows.Err()
}

// GetAthlete returns one athlete
func (r *AthleteRepo) GetAthlete(ctx context.Context, id types.AthleteID) (*models.Athlete, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+athleteColumns+` FROM athletes WHERE id = ?`, id.ToInt())
	a, err := scanAthlete(row)
	if err != nil {
		return nil, notFound(err, "athlete", id.ToInt())
	}
	return a, nil
}

// CreateAthlete inserts a and returns it with its new id
func (r *AthleteRepo) CreateAthlete(ctx context.Context, a *models.Athlete) (*models.Athlete, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO athletes (first_name, last_name, second_last_name, photo_url, age, category, sport, curp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		a.FirstName, a.LastName, a.SecondLastName, ptrToNullString(a.PhotoURL), a.Age, a.Category, a.Sport, a.CURP,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert athlete: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *a
	created.ID = types.AthleteIDFromInt(int(id))
	return &created, nil
}
