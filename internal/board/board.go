// Package board holds the state of the athlete assignment board: the athlete
// registry, the program columns, the drag controller and the orchestrator
// that keeps them consistent with the backend.
package board

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// UnassignedLabel is the header of the derived column
const UnassignedLabel = "Unassigned"

// Status is the load state of the board
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "unknown"
	}
}

// Backend is the remote side of the board
type Backend interface {
	ListAthletes(ctx context.Context) ([]*models.Athlete, error)
	ListPrograms(ctx context.Context) ([]*models.Program, error)
	// AssignAthlete moves athlete into program at position. Unassigned
	// clears the athlete's program.
	AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error
}

// Board owns the registry and the columns. Moves are applied locally first
// and confirmed against the backend afterwards; a rejected move is reverted.
type Board struct {
	mu       sync.RWMutex
	backend  Backend
	status   Status
	err      error
	registry *Registry
	columns  []Column
	query    string
	drag     *Controller

	// epoch changes on every load so commits staged against old data never
	// roll back fresh data
	epoch uint64
	// unsettled commits per athlete
	pending map[types.AthleteID]*history
}

// New returns an idle board
func New(backend Backend) *Board {
	return &Board{
		backend: backend,
		status:  StatusIdle,
		drag:    NewController(),
		pending: make(map[types.AthleteID]*history),
	}
}

// Load fetches athletes and programs and rebuilds the board.
// Idle | Error | Ready -> Loading -> Ready | Error
func (b *Board) Load(ctx context.Context) error {
	b.mu.Lock()
	b.status = StatusLoading
	b.err = nil
	b.mu.Unlock()

	athletes, err := b.backend.ListAthletes(ctx)
	if err != nil {
		return b.fail(fmt.Errorf("failed to list athletes: %w", err))
	}
	programs, err := b.backend.ListPrograms(ctx)
	if err != nil {
		return b.fail(fmt.Errorf("failed to list programs: %w", err))
	}

	registry := NewRegistry(athletes)
	columns := Initialize(programs)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.registry = registry
	b.columns = columns
	b.status = StatusReady
	b.epoch++
	b.pending = make(map[types.AthleteID]*history)
	return nil
}

// Retry reloads after a failed load
func (b *Board) Retry(ctx context.Context) error {
	return b.Load(ctx)
}

func (b *Board) fail(err error) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.status = StatusError
	b.err = err
	slog.Error("board load failed", "error", err)
	return err
}

// Status returns the load status and the last load error
func (b *Board) Status() (Status, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.status, b.err
}

// Drag returns the board's single drag controller
func (b *Board) Drag() *Controller {
	return b.drag
}

// Registry returns the registry of the last successful load
func (b *Board) Registry() *Registry {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.registry
}

// Columns returns a copy of the program columns
func (b *Board) Columns() []Column {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return Clone(b.columns)
}

// Unassigned returns the derived unassigned ids
func (b *Board) Unassigned() []types.AthleteID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return UnassignedIDs(b.registry, b.columns)
}

// Lookup returns a copy of one column's list. Unassigned yields the derived list.
func (b *Board) Lookup(program types.ProgramID) []types.AthleteID {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.lookup(program)
}

// lookupColumn is the drag controller's view of the board. Before the first
// load no column exists.
func (b *Board) lookupColumn(program types.ProgramID) ([]types.AthleteID, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.status != StatusReady {
		return nil, false
	}
	if program != Unassigned && indexOf(b.columns, program) < 0 {
		return nil, false
	}
	return b.lookup(program), true
}

func (b *Board) lookup(program types.ProgramID) []types.AthleteID {
	if program == Unassigned {
		return UnassignedIDs(b.registry, b.columns)
	}
	if i := indexOf(b.columns, program); i >= 0 {
		out := make([]types.AthleteID, len(b.columns[i].AthleteIDs))
		copy(out, b.columns[i].AthleteIDs)
		return out
	}
	return nil
}

// ============================================================================
// Moves
// ============================================================================

type commitState int

const (
	commitPending commitState = iota
	commitConfirmed
	commitFailed
)

// Commit is a move that has been applied locally and still has to be
// confirmed with the backend
type Commit struct {
	board         *Board
	move          Move
	inverse       Move
	position      int
	noop          bool
	epoch         uint64
	state         commitState
	rolledBack    bool
	restoredTo    types.ProgramID
	confirmedOnce sync.Once
	result        error
}

// history is the chain of one athlete's commits that are not all settled,
// oldest first. shown is the commit whose result the columns display, or -1
// for the state before the oldest one.
type history struct {
	commits []*Commit
	shown   int
}

// Move returns the move as applied, with From taken from the board's state
func (c *Commit) Move() Move {
	return c.move
}

// Noop reports whether the move changed nothing and needs no backend call
func (c *Commit) Noop() bool {
	return c.noop
}

// RolledBack reports whether a failed confirmation reverted the move
func (c *Commit) RolledBack() bool {
	c.board.mu.RLock()
	defer c.board.mu.RUnlock()
	return c.rolledBack
}

// RestoredTo is the column the athlete went back to after a rollback
func (c *Commit) RestoredTo() types.ProgramID {
	c.board.mu.RLock()
	defer c.board.mu.RUnlock()
	return c.restoredTo
}

// Stage applies mv to the local columns and returns the pending commit.
// Nothing is sent to the backend until Confirm.
func (b *Board) Stage(mv Move) (*Commit, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.status != StatusReady {
		return nil, ErrNotLoaded
	}
	if _, ok := b.registry.Get(mv.Athlete); !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAthlete, mv.Athlete)
	}
	if mv.To != Unassigned && indexOf(b.columns, mv.To) < 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnknownProgram, mv.To)
	}

	from, original, found := Locate(b.columns, mv.Athlete)
	if !found {
		original = EndOfColumn
	}
	mv.From = from

	commit := &Commit{board: b, move: mv, epoch: b.epoch}
	if mv.IsNoop(b.columns) {
		commit.noop = true
		return commit, nil
	}

	b.columns = ApplyMove(b.columns, mv)
	commit.inverse = mv.Inverse(original)
	if mv.To != Unassigned {
		_, commit.position, _ = Locate(b.columns, mv.Athlete)
	}
	commit.move.Index = commit.position

	h := b.pending[mv.Athlete]
	if h == nil {
		h = &history{}
		b.pending[mv.Athlete] = h
	}
	h.commits = append(h.commits, commit)
	h.shown = len(h.commits) - 1
	return commit, nil
}

// Confirm persists the move. On failure the athlete goes back to the result
// of its newest commit that has not failed, or to where it was before its
// oldest unsettled commit when all of them failed. A failure hidden behind a
// newer live commit, or one staged before a reload, changes nothing. The
// returned error wraps ErrMoveRejected. Confirm is safe to call more than once; only
// the first call reaches the backend.
func (c *Commit) Confirm(ctx context.Context) error {
	if c.noop {
		return nil
	}
	c.confirmedOnce.Do(func() {
		c.result = c.board.confirm(ctx, c)
	})
	return c.result
}

func (b *Board) confirm(ctx context.Context, c *Commit) error {
	err := b.backend.AssignAthlete(ctx, c.move.Athlete, c.move.To, c.position)

	b.mu.Lock()
	defer b.mu.Unlock()
	if err == nil {
		c.state = commitConfirmed
		b.settle(c)
		return nil
	}

	c.state = commitFailed
	b.rollback(c, err)
	b.settle(c)
	return fmt.Errorf("%w: athlete %d: %w", ErrMoveRejected, c.move.Athlete, err)
}

// rollback redisplays the newest commit of c's athlete that has not failed.
// Callers hold b.mu.
func (b *Board) rollback(c *Commit, cause error) {
	if c.epoch != b.epoch {
		return
	}
	h := b.pending[c.move.Athlete]
	if h == nil {
		return
	}

	target := -1
	for i := len(h.commits) - 1; i >= 0; i-- {
		if h.commits[i].state != commitFailed {
			target = i
			break
		}
	}
	if target == h.shown {
		return
	}

	restore := h.commits[0].inverse
	if target >= 0 {
		restore = h.commits[target].move
	}
	b.columns = ApplyMove(b.columns, restore)
	h.shown = target
	c.rolledBack = true
	c.restoredTo = restore.To
	slog.Warn("move rolled back",
		"athlete", c.move.Athlete.ToInt(),
		"to", c.move.To.ToInt(),
		"restored", restore.To.ToInt(),
		"error", cause)
}

// settle forgets the athlete's history once none of its commits is pending.
// Callers hold b.mu.
func (b *Board) settle(c *Commit) {
	if c.epoch != b.epoch {
		return
	}
	h := b.pending[c.move.Athlete]
	if h == nil {
		return
	}
	for _, p := range h.commits {
		if p.state == commitPending {
			return
		}
	}
	delete(b.pending, c.move.Athlete)
}

// Move stages mv and confirms it in the background. The channel receives
// the confirmation result once.
func (b *Board) Move(ctx context.Context, mv Move) (<-chan error, error) {
	commit, err := b.Stage(mv)
	if err != nil {
		return nil, err
	}
	done := make(chan error, 1)
	go func() {
		done <- commit.Confirm(ctx)
	}()
	return done, nil
}

// DropDrag completes the active drag. ok is false when the drag was
// cancelled or no drag was active; a cancelled drag never touches the columns.
func (b *Board) DropDrag() (commit *Commit, ok bool, err error) {
	mv, dropped := b.drag.Drop(b.lookupColumn)
	if !dropped {
		return nil, false, nil
	}
	commit, err = b.Stage(mv)
	if err != nil {
		return nil, true, err
	}
	return commit, true, nil
}

// ============================================================================
// Filtered view
// ============================================================================

// ColumnView is one rendered column. Athletes holds only the matching
// athletes; Total counts every member.
type ColumnView struct {
	ID       types.ProgramID
	Label    string
	Athletes []*models.Athlete
	Total    int
}

// View is a read-only snapshot for presentation
type View struct {
	Status  Status
	Err     error
	Query   string
	Columns []ColumnView
}

// SetQuery sets the search filter. It affects View only.
func (b *Board) SetQuery(q string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.query = q
}

// Query returns the current search filter
func (b *Board) Query() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.query
}

// View returns the unassigned column followed by the program columns in
// backend order, filtered by the query
func (b *Board) View() View {
	b.mu.RLock()
	defer b.mu.RUnlock()

	v := View{Status: b.status, Err: b.err, Query: b.query}
	if b.status != StatusReady {
		return v
	}

	v.Columns = make([]ColumnView, 0, len(b.columns)+1)
	v.Columns = append(v.Columns, b.columnView(Unassigned, UnassignedLabel, UnassignedIDs(b.registry, b.columns)))
	for _, c := range b.columns {
		v.Columns = append(v.Columns, b.columnView(c.ID, c.Label, c.AthleteIDs))
	}
	return v
}

func (b *Board) columnView(id types.ProgramID, label string, ids []types.AthleteID) ColumnView {
	cv := ColumnView{ID: id, Label: label, Total: len(ids), Athletes: make([]*models.Athlete, 0, len(ids))}
	for _, aid := range ids {
		a, ok := b.registry.Get(aid)
		if !ok {
			continue
		}
		if a.Matches(b.query) {
			cv.Athletes = append(cv.Athletes, a)
		}
	}
	return cv
}

// Arrange returns a copy of v with hidden program columns removed and pinned
// ones moved right after the unassigned column. Relative order is kept
// within each group. The unassigned column is never hidden.
func (v View) Arrange(hidden, pinned func(types.ProgramID) bool) View {
	out := v
	out.Columns = make([]ColumnView, 0, len(v.Columns))
	var rest []ColumnView
	for _, c := range v.Columns {
		switch {
		case c.ID == Unassigned:
			out.Columns = append(out.Columns, c)
		case hidden != nil && hidden(c.ID):
		case pinned != nil && pinned(c.ID):
			out.Columns = append(out.Columns, c)
		default:
			rest = append(rest, c)
		}
	}
	out.Columns = append(out.Columns, rest...)
	return out
}
