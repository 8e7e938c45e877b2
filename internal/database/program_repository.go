package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// ProgramRepo handles programs and the athlete assignments inside them.
type ProgramRepo struct {
	db *sql.DB
}

// ListPrograms returns every program in display order with its athletes in
// position order
func (r *ProgramRepo) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description FROM programs ORDER BY display_order, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query programs: %w", err)
	}
	defer rows.Close()

	programs := make([]*models.Program, 0)
	byID := make(map[types.ProgramID]*models.Program)
	for rows.Next() {
		p := &models.Program{AthleteIDs: []types.AthleteID{}}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description); err != nil {
			return nil, fmt.Errorf("failed to scan program: %w", err)
		}
		programs = append(programs, p)
		byID[p.ID] = p
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	members, err := r.db.QueryContext(ctx,
		`SELECT program_id, athlete_id FROM assignments ORDER BY program_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer members.Close()

	for members.Next() {
		var programID types.ProgramID
		var athleteID types.AthleteID
		if err := members.Scan(&programID, &athleteID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment: %w", err)
		}
		if p, ok := byID[programID]; ok {
			p.AthleteIDs = append(p.AthleteIDs, athleteID)
		}
	}
	return programs, members.Err()
}

// CreateProgram appends a program after the existing ones
func (r *ProgramRepo) CreateProgram(ctx context.Context, name, description string) (*models.Program, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO programs (name, description, display_order)
		 VALUES (?, ?, (SELECT COALESCE(MAX(display_order), -1) + 1 FROM programs))`,
		name, description)
	if err != nil {
		return nil, fmt.Errorf("failed to insert program: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return &models.Program{
		ID:          types.ProgramIDFromInt(int(id)),
		Name:        name,
		Description: description,
		AthleteIDs:  []types.AthleteID{},
	}, nil
}

// AssignAthlete moves athlete into program at position, closing the gap it
// leaves behind. A position past the end appends. Program zero removes the
// assignment.
func (r *ProgramRepo) AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		if err := mustExist(ctx, tx, "athletes", athlete.ToInt()); err != nil {
			return notFound(err, "athlete", athlete.ToInt())
		}
		if program != 0 {
			if err := mustExist(ctx, tx, "programs", program.ToInt()); err != nil {
				return notFound(err, "program", program.ToInt())
			}
		}

		var oldProgram, oldPosition int
		err := tx.QueryRowContext(ctx,
			`SELECT program_id, position FROM assignments WHERE athlete_id = ?`, athlete.ToInt(),
		).Scan(&oldProgram, &oldPosition)
		switch {
		case errors.Is(err, sql.ErrNoRows):
		case err != nil:
			return fmt.Errorf("failed to read assignment: %w", err)
		default:
			if _, err := tx.ExecContext(ctx, `DELETE FROM assignments WHERE athlete_id = ?`, athlete.ToInt()); err != nil {
				return fmt.Errorf("failed to remove assignment: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE assignments SET position = position - 1 WHERE program_id = ? AND position > ?`,
				oldProgram, oldPosition); err != nil {
				return fmt.Errorf("failed to close gap: %w", err)
			}
		}

		if program == 0 {
			return nil
		}

		var count int
		if err := tx.QueryRowContext(ctx,
			`SELECT COUNT(*) FROM assignments WHERE program_id = ?`, program.ToInt()).Scan(&count); err != nil {
			return fmt.Errorf("failed to count assignments: %w", err)
		}
		if position < 0 || position > count {
			position = count
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE assignments SET position = position + 1 WHERE program_id = ? AND position >= ?`,
			program.ToInt(), position); err != nil {
			return fmt.Errorf("failed to open slot: %w", err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO assignments (athlete_id, program_id, position) VALUES (?, ?, ?)`,
			athlete.ToInt(), program.ToInt(), position); err != nil {
			return fmt.Errorf("failed to insert assignment: %w", err)
		}
		return nil
	})
}

func mustExist(ctx context.Context, tx *sql.Tx, table string, id int) error {
	var one int
	return tx.QueryRowContext(ctx, fmt.Sprintf("SELECT 1 FROM %s WHERE id = ?", table), id).Scan(&one)
}
