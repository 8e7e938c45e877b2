package api

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// ListAthletes returns every athlete
func (c *Client) ListAthletes(ctx context.Context) ([]*models.Athlete, error) {
	var out []*models.Athlete
	if err := c.getJSON(ctx, "/athletes", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListPrograms returns every program with its current membership
func (c *Client) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	var out []*models.Program
	if err := c.getJSON(ctx, "/programs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// AssignAthlete moves athlete into program at position. ProgramID zero
// clears the athlete's program.
func (c *Client) AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error {
	body := models.Assignment{ProgramID: program, Position: position}
	return c.putJSON(ctx, fmt.Sprintf("/assignments/%d", athlete.ToInt()), body, nil)
}
