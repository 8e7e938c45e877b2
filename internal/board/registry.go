package board

import (
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// Registry is the id -> athlete lookup built from one fetch of the athlete
// list. It is read-only once built; a refresh builds a new one.
type Registry struct {
	byID  map[types.AthleteID]*models.Athlete
	order []types.AthleteID
}

// NewRegistry indexes athletes by id. A duplicate id overwrites the earlier
// record but keeps the earlier position in fetch order.
func NewRegistry(athletes []*models.Athlete) *Registry {
	r := &Registry{
		byID:  make(map[types.AthleteID]*models.Athlete, len(athletes)),
		order: make([]types.AthleteID, 0, len(athletes)),
	}
	for _, a := range athletes {
		if a == nil {
			continue
		}
		if _, seen := r.byID[a.ID]; !seen {
			r.order = append(r.order, a.ID)
		}
		r.byID[a.ID] = a
	}
	return r
}

// Get returns the athlete for id
func (r *Registry) Get(id types.AthleteID) (*models.Athlete, bool) {
	if r == nil {
		return nil, false
	}
	a, ok := r.byID[id]
	return a, ok
}

// IDs returns every athlete id in fetch order
func (r *Registry) IDs() []types.AthleteID {
	if r == nil {
		return nil
	}
	out := make([]types.AthleteID, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct athletes
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.order)
}
