package board

import (
	"slices"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// Unassigned is the synthetic column of athletes that belong to no program.
// It has no stored list; its contents are always derived.
const Unassigned types.ProgramID = 0

// EndOfColumn as a move index means append
const EndOfColumn = -1

// Column is the ordered membership of one program
type Column struct {
	ID         types.ProgramID
	Label      string
	AthleteIDs []types.AthleteID
}

// Move relocates one athlete. Index is a position in the destination list
// after the athlete has been taken out of it.
type Move struct {
	Athlete types.AthleteID
	From    types.ProgramID
	To      types.ProgramID
	Index   int
}

// Initialize builds one column per program, seeded with the backend's
// membership. An id listed by more than one program stays in the first one.
func Initialize(programs []*models.Program) []Column {
	seen := make(map[types.AthleteID]bool)
	cols := make([]Column, 0, len(programs))
	for _, p := range programs {
		if p == nil {
			continue
		}
		ids := make([]types.AthleteID, 0, len(p.AthleteIDs))
		for _, id := range p.AthleteIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			ids = append(ids, id)
		}
		cols = append(cols, Column{ID: p.ID, Label: p.Name, AthleteIDs: ids})
	}
	return cols
}

// UnassignedIDs returns every registry id that no column holds, in registry
// order
func UnassignedIDs(registry *Registry, columns []Column) []types.AthleteID {
	assigned := make(map[types.AthleteID]bool)
	for _, c := range columns {
		for _, id := range c.AthleteIDs {
			assigned[id] = true
		}
	}
	out := make([]types.AthleteID, 0)
	for _, id := range registry.IDs() {
		if !assigned[id] {
			out = append(out, id)
		}
	}
	return out
}

// ApplyMove returns the columns after mv. The input is not modified.
// The athlete is removed from every column before insertion, so stale copies
// never survive and applying the same move twice gives the same result.
// A move into a program that is not present leaves the columns unchanged.
func ApplyMove(columns []Column, mv Move) []Column {
	if mv.To != Unassigned && indexOf(columns, mv.To) < 0 {
		return Clone(columns)
	}

	out := make([]Column, len(columns))
	for i, c := range columns {
		ids := make([]types.AthleteID, 0, len(c.AthleteIDs)+1)
		for _, id := range c.AthleteIDs {
			if id != mv.Athlete {
				ids = append(ids, id)
			}
		}
		out[i] = Column{ID: c.ID, Label: c.Label, AthleteIDs: ids}
	}

	if mv.To == Unassigned {
		return out
	}

	dest := &out[indexOf(out, mv.To)]
	at := mv.Index
	if at < 0 || at > len(dest.AthleteIDs) {
		at = len(dest.AthleteIDs)
	}
	dest.AthleteIDs = slices.Insert(dest.AthleteIDs, at, mv.Athlete)
	return out
}

// Inverse returns the move that undoes mv, given the athlete's position
// before mv was applied
func (mv Move) Inverse(originalIndex int) Move {
	return Move{Athlete: mv.Athlete, From: mv.To, To: mv.From, Index: originalIndex}
}

// IsNoop reports whether applying mv would leave columns unchanged
func (mv Move) IsNoop(columns []Column) bool {
	program, pos, found := Locate(columns, mv.Athlete)
	if mv.To == Unassigned {
		return !found
	}
	if !found || program != mv.To {
		return false
	}
	last := len(columns[indexOf(columns, program)].AthleteIDs) - 1
	at := mv.Index
	if at < 0 || at > last {
		at = last
	}
	return at == pos
}

// Locate finds the column and position holding id. found is false when the
// athlete is unassigned.
func Locate(columns []Column, id types.AthleteID) (program types.ProgramID, index int, found bool) {
	for _, c := range columns {
		for i, a := range c.AthleteIDs {
			if a == id {
				return c.ID, i, true
			}
		}
	}
	return Unassigned, -1, false
}

// Membership maps every assigned athlete to its program
func Membership(columns []Column) map[types.AthleteID]types.ProgramID {
	out := make(map[types.AthleteID]types.ProgramID)
	for _, c := range columns {
		for _, id := range c.AthleteIDs {
			out[id] = c.ID
		}
	}
	return out
}

// Clone deep-copies columns
func Clone(columns []Column) []Column {
	out := make([]Column, len(columns))
	for i, c := range columns {
		out[i] = Column{ID: c.ID, Label: c.Label, AthleteIDs: slices.Clone(c.AthleteIDs)}
	}
	return out
}

func indexOf(columns []Column, id types.ProgramID) int {
	for i, c := range columns {
		if c.ID == id {
			return i
		}
	}
	return -1
}
