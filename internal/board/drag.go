package board

import (
	"sync"

	"github.com/thenoetrevino/plantel/internal/types"
)

// Phase is the state of the drag controller
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseDragging
	PhaseDropped
	PhaseCancelled
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseDragging:
		return "dragging"
	case PhaseDropped:
		return "dropped"
	case PhaseCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Edge says which half of the hovered card the pointer is over
type Edge int

const (
	EdgeNone Edge = iota
	EdgeTop
	EdgeBottom
)

// Target is a candidate drop location. Card is zero when hovering the column
// surface rather than a card.
type Target struct {
	Column types.ProgramID
	Card   types.AthleteID
	Edge   Edge
}

// Session describes the active drag
type Session struct {
	Athlete types.AthleteID
	From    types.ProgramID
	Target  *Target
}

// Controller tracks at most one drag at a time.
// Idle -> Dragging -> Dropped | Cancelled -> Idle
type Controller struct {
	mu      sync.Mutex
	phase   Phase
	session Session
	last    Phase
}

// NewController returns an idle controller
func NewController() *Controller {
	return &Controller{phase: PhaseIdle, last: PhaseIdle}
}

// Phase returns the current phase: Idle or Dragging
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// LastOutcome returns how the previous session ended, Dropped or Cancelled.
// It is Idle before the first session ends.
func (c *Controller) LastOutcome() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last
}

// Session returns a copy of the active session
func (c *Controller) Session() (Session, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseDragging {
		return Session{}, false
	}
	s := c.session
	if s.Target != nil {
		t := *s.Target
		s.Target = &t
	}
	return s, true
}

// Start begins dragging athlete out of column from
func (c *Controller) Start(athlete types.AthleteID, from types.ProgramID) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseDragging {
		return ErrDragInProgress
	}
	c.phase = PhaseDragging
	c.session = Session{Athlete: athlete, From: from}
	return nil
}

// Hover records t as the candidate drop target
func (c *Controller) Hover(t Target) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseDragging {
		return ErrNotDragging
	}
	c.session.Target = &t
	return nil
}

// Leave clears the candidate target
func (c *Controller) Leave() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase == PhaseDragging {
		c.session.Target = nil
	}
}

// LookupFunc returns the current list of a column and whether the column
// exists on the board
type LookupFunc func(types.ProgramID) ([]types.AthleteID, bool)

// Drop ends the session. With a candidate target on a known column it emits
// exactly one move; without one it cancels. lookup is also used to turn a
// card target into an index.
func (c *Controller) Drop(lookup LookupFunc) (Move, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseDragging {
		return Move{}, false
	}
	s := c.session
	if s.Target == nil {
		c.finish(PhaseCancelled)
		return Move{}, false
	}
	list, known := lookup(s.Target.Column)
	if !known {
		c.finish(PhaseCancelled)
		return Move{}, false
	}

	mv := Move{
		Athlete: s.Athlete,
		From:    s.From,
		To:      s.Target.Column,
		Index:   dropIndex(s.Athlete, *s.Target, list),
	}
	c.finish(PhaseDropped)
	return mv, true
}

// Cancel ends the session without a move. It reports whether a drag was active.
func (c *Controller) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseDragging {
		return false
	}
	c.finish(PhaseCancelled)
	return true
}

func (c *Controller) finish(outcome Phase) {
	c.last = outcome
	c.phase = PhaseIdle
	c.session = Session{}
}

// dropIndex converts a target into a position in the destination list as it
// will be once the dragged athlete is taken out of it
func dropIndex(dragged types.AthleteID, t Target, list []types.AthleteID) int {
	if t.Card == 0 {
		return EndOfColumn
	}

	if t.Card == dragged {
		for i, id := range list {
			if id == dragged {
				return i
			}
		}
		return EndOfColumn
	}

	pos := 0
	for _, id := range list {
		if id == dragged {
			continue
		}
		if id == t.Card {
			if t.Edge == EdgeBottom {
				return pos + 1
			}
			return pos
		}
		pos++
	}
	return EndOfColumn
}
