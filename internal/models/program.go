package models

import "github.com/thenoetrevino/plantel/internal/types"

// Program is a training or treatment program. AthleteIDs is the membership
// as last reported by the backend, in display order.
type Program struct {
	ID          types.ProgramID   `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	AthleteIDs  []types.AthleteID `json:"athlete_ids"`
}

// Assignment is the body of an assignment update. ProgramID zero clears the
// athlete's program.
type Assignment struct {
	ProgramID types.ProgramID `json:"program_id"`
	Position  int             `json:"position"`
}
