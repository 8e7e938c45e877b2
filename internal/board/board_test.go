package board

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

type assignCall struct {
	athlete  types.AthleteID
	program  types.ProgramID
	position int
}

// fakeBackend serves fixed data. assignErr, when set, decides the result of
// each assignment; gate, when set, blocks assignments until it is closed.
type fakeBackend struct {
	mu        sync.Mutex
	athletes  []*models.Athlete
	programs  []*models.Program
	listErr   error
	assignErr func(types.AthleteID) error
	gate      chan struct{}
	calls     []assignCall
}

func (f *fakeBackend) ListAthletes(ctx context.Context) ([]*models.Athlete, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.athletes, nil
}

func (f *fakeBackend) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.programs, nil
}

func (f *fakeBackend) AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error {
	if f.gate != nil {
		<-f.gate
	}
	f.mu.Lock()
	f.calls = append(f.calls, assignCall{athlete, program, position})
	f.mu.Unlock()
	if f.assignErr != nil {
		return f.assignErr(athlete)
	}
	return nil
}

func (f *fakeBackend) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		athletes: []*models.Athlete{
			{ID: 1, FirstName: "Ana", LastName: "Torres"},
			{ID: 2, FirstName: "Bruno", LastName: "Díaz"},
			{ID: 3, FirstName: "Carla", LastName: "Vega"},
		},
		programs: []*models.Program{
			{ID: 10, Name: "A", AthleteIDs: ids()},
			{ID: 20, Name: "B", AthleteIDs: ids(1, 2)},
		},
	}
}

func loadedBoard(t *testing.T, backend *fakeBackend) *Board {
	t.Helper()
	b := New(backend)
	require.NoError(t, b.Load(context.Background()))
	return b
}

func TestBoard_LoadStatus(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.listErr = errors.New("connection refused")
	b := New(backend)

	status, _ := b.Status()
	assert.Equal(t, StatusIdle, status)

	err := b.Load(context.Background())
	require.Error(t, err)
	status, loadErr := b.Status()
	assert.Equal(t, StatusError, status)
	assert.ErrorContains(t, loadErr, "connection refused")

	_, err = b.Stage(Move{Athlete: 1, To: 10})
	assert.ErrorIs(t, err, ErrNotLoaded)

	backend.listErr = nil
	require.NoError(t, b.Retry(context.Background()))
	status, loadErr = b.Status()
	assert.Equal(t, StatusReady, status)
	assert.NoError(t, loadErr)
	assert.Equal(t, ids(3), b.Unassigned())
}

func TestBoard_MoveConfirmed(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	commit, err := b.Stage(Move{Athlete: 1, From: 20, To: 10, Index: 0})
	require.NoError(t, err)

	// applied before the backend answers
	cols := b.Columns()
	assert.Equal(t, ids(1), cols[0].AthleteIDs)
	assert.Equal(t, ids(2), cols[1].AthleteIDs)
	assert.Equal(t, 0, backend.callCount())

	require.NoError(t, commit.Confirm(context.Background()))
	assert.False(t, commit.RolledBack())
	assert.Equal(t, []assignCall{{athlete: 1, program: 10, position: 0}}, backend.calls)
	assert.Equal(t, ids(1), b.Columns()[0].AthleteIDs)
}

func TestBoard_MoveRejectedRollsBack(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.assignErr = func(types.AthleteID) error { return errors.New("program full") }
	b := loadedBoard(t, backend)
	before := b.Columns()

	commit, err := b.Stage(Move{Athlete: 1, From: 20, To: 10, Index: 0})
	require.NoError(t, err)
	require.NotEqual(t, before, b.Columns())

	err = commit.Confirm(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMoveRejected)
	assert.ErrorContains(t, err, "program full")
	assert.True(t, commit.RolledBack())
	assert.Equal(t, before, b.Columns())
}

func TestBoard_ReorderRejectedRestoresOrder(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.assignErr = func(types.AthleteID) error { return errors.New("boom") }
	b := loadedBoard(t, backend)

	commit, err := b.Stage(Move{Athlete: 2, From: 20, To: 20, Index: 0})
	require.NoError(t, err)
	assert.Equal(t, ids(2, 1), b.Columns()[1].AthleteIDs)

	require.Error(t, commit.Confirm(context.Background()))
	assert.Equal(t, ids(1, 2), b.Columns()[1].AthleteIDs)
}

func TestBoard_UnassignRejectedRestores(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.assignErr = func(types.AthleteID) error { return errors.New("boom") }
	b := loadedBoard(t, backend)

	commit, err := b.Stage(Move{Athlete: 2, To: Unassigned})
	require.NoError(t, err)
	assert.Equal(t, ids(2, 3), b.Unassigned())

	require.Error(t, commit.Confirm(context.Background()))
	assert.Equal(t, ids(1, 2), b.Columns()[1].AthleteIDs)
	assert.Equal(t, ids(3), b.Unassigned())
}

func TestBoard_RollbackSkippedWhenSuperseded(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	first, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
	require.NoError(t, err)
	second, err := b.Stage(Move{Athlete: 1, To: Unassigned})
	require.NoError(t, err)

	backend.assignErr = func(types.AthleteID) error { return errors.New("stale") }
	require.Error(t, first.Confirm(context.Background()))
	assert.False(t, first.RolledBack(), "a later move owns the athlete now")
	assert.Contains(t, b.Unassigned(), types.AthleteID(1))

	backend.assignErr = nil
	require.NoError(t, second.Confirm(context.Background()))
}

func TestBoard_ChainedRejectionsRestoreOriginal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		newestFirst bool
	}{
		{name: "newest confirmed first", newestFirst: true},
		{name: "oldest confirmed first", newestFirst: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			backend := newFakeBackend()
			backend.assignErr = func(types.AthleteID) error { return errors.New("rejected") }
			b := loadedBoard(t, backend)
			before := b.Columns()

			first, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
			require.NoError(t, err)
			second, err := b.Stage(Move{Athlete: 1, To: Unassigned})
			require.NoError(t, err)

			older, newer := first, second
			if tt.newestFirst {
				require.Error(t, newer.Confirm(context.Background()))
				// the older move is still pending, so its result is shown
				assert.Equal(t, types.ProgramID(10), Membership(b.Columns())[1])
				assert.True(t, newer.RolledBack())
				assert.Equal(t, types.ProgramID(10), newer.RestoredTo())
				require.Error(t, older.Confirm(context.Background()))
			} else {
				require.Error(t, older.Confirm(context.Background()))
				assert.False(t, older.RolledBack(), "the newer move is still pending")
				require.Error(t, newer.Confirm(context.Background()))
			}

			assert.Equal(t, before, b.Columns())
			assert.Equal(t, ids(3), b.Unassigned())
			assert.Equal(t, types.ProgramID(20), Membership(b.Columns())[1])
		})
	}
}

func TestBoard_RejectionFallsBackToConfirmedMove(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	first, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
	require.NoError(t, err)
	second, err := b.Stage(Move{Athlete: 1, To: Unassigned})
	require.NoError(t, err)

	require.NoError(t, first.Confirm(context.Background()))
	backend.assignErr = func(types.AthleteID) error { return errors.New("rejected") }
	require.Error(t, second.Confirm(context.Background()))

	assert.True(t, second.RolledBack())
	assert.Equal(t, types.ProgramID(10), second.RestoredTo())
	assert.Equal(t, ids(1), b.Columns()[0].AthleteIDs)
	assert.NotContains(t, b.Unassigned(), types.AthleteID(1))
}

func TestBoard_SettledHistoryStartsFresh(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	first, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
	require.NoError(t, err)
	require.NoError(t, first.Confirm(context.Background()))

	backend.assignErr = func(types.AthleteID) error { return errors.New("rejected") }
	second, err := b.Stage(Move{Athlete: 1, To: Unassigned})
	require.NoError(t, err)
	require.Error(t, second.Confirm(context.Background()))

	assert.True(t, second.RolledBack())
	assert.Equal(t, types.ProgramID(10), Membership(b.Columns())[1])
}

func TestBoard_IndependentRollbacks(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.assignErr = func(id types.AthleteID) error {
		if id == 1 {
			return errors.New("rejected")
		}
		return nil
	}
	b := loadedBoard(t, backend)

	m1, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
	require.NoError(t, err)
	m3, err := b.Stage(Move{Athlete: 3, To: 10, Index: EndOfColumn})
	require.NoError(t, err)

	require.Error(t, m1.Confirm(context.Background()))
	require.NoError(t, m3.Confirm(context.Background()))

	membership := Membership(b.Columns())
	assert.Equal(t, types.ProgramID(20), membership[1])
	assert.Equal(t, types.ProgramID(10), membership[3])
}

func TestBoard_NoopSkipsBackend(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	commit, err := b.Stage(Move{Athlete: 1, To: 20, Index: 0})
	require.NoError(t, err)
	assert.True(t, commit.Noop())
	require.NoError(t, commit.Confirm(context.Background()))
	assert.Equal(t, 0, backend.callCount())
}

func TestBoard_StageRejectsUnknown(t *testing.T) {
	t.Parallel()

	b := loadedBoard(t, newFakeBackend())

	_, err := b.Stage(Move{Athlete: 99, To: 10})
	assert.ErrorIs(t, err, ErrUnknownAthlete)

	_, err = b.Stage(Move{Athlete: 1, To: 99})
	assert.ErrorIs(t, err, ErrUnknownProgram)
}

func TestBoard_MoveRunsInBackground(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	backend.gate = make(chan struct{})
	b := loadedBoard(t, backend)

	done, err := b.Move(context.Background(), Move{Athlete: 3, To: 20, Index: 1})
	require.NoError(t, err)

	// already visible while the backend call is blocked
	assert.Equal(t, ids(1, 3, 2), b.Columns()[1].AthleteIDs)

	close(backend.gate)
	require.NoError(t, <-done)
	assert.Equal(t, []assignCall{{athlete: 3, program: 20, position: 1}}, backend.calls)
}

func TestBoard_ReloadDiscardsStaleRollback(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	commit, err := b.Stage(Move{Athlete: 1, To: 10, Index: 0})
	require.NoError(t, err)

	backend.programs = []*models.Program{
		{ID: 10, Name: "A", AthleteIDs: ids(1)},
		{ID: 20, Name: "B", AthleteIDs: ids(2)},
	}
	require.NoError(t, b.Load(context.Background()))

	backend.assignErr = func(types.AthleteID) error { return errors.New("late failure") }
	require.Error(t, commit.Confirm(context.Background()))
	assert.False(t, commit.RolledBack())
	assert.Equal(t, ids(1), b.Columns()[0].AthleteIDs)
}

func TestBoard_DragDrop(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)

	require.NoError(t, b.Drag().Start(2, 20))
	require.NoError(t, b.Drag().Hover(Target{Column: 10}))
	commit, ok, err := b.DropDrag()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, Move{Athlete: 2, From: 20, To: 10, Index: 0}, commit.Move())
	assert.Equal(t, ids(2), b.Columns()[0].AthleteIDs)
	require.NoError(t, commit.Confirm(context.Background()))
}

func TestBoard_DropOnUnknownColumnCancels(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)
	before := b.Columns()

	require.NoError(t, b.Drag().Start(2, 20))
	require.NoError(t, b.Drag().Hover(Target{Column: 99}))
	commit, ok, err := b.DropDrag()
	assert.Nil(t, commit)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, PhaseCancelled, b.Drag().LastOutcome())
	assert.Equal(t, before, b.Columns())
}

func TestBoard_CancelledDragLeavesColumns(t *testing.T) {
	t.Parallel()

	backend := newFakeBackend()
	b := loadedBoard(t, backend)
	before := b.Columns()

	require.NoError(t, b.Drag().Start(2, 20))
	require.NoError(t, b.Drag().Hover(Target{Column: 10}))
	require.True(t, b.Drag().Cancel())

	commit, ok, err := b.DropDrag()
	assert.Nil(t, commit)
	assert.False(t, ok)
	assert.NoError(t, err)
	assert.Equal(t, before, b.Columns())
	assert.Equal(t, 0, backend.callCount())
}

func TestBoard_ViewFiltersWithoutMutating(t *testing.T) {
	t.Parallel()

	b := loadedBoard(t, newFakeBackend())
	before := b.Columns()

	b.SetQuery("BRU")
	v := b.View()
	require.Len(t, v.Columns, 3)
	assert.Equal(t, Unassigned, v.Columns[0].ID)
	assert.Equal(t, UnassignedLabel, v.Columns[0].Label)
	assert.Empty(t, v.Columns[0].Athletes)
	assert.Empty(t, v.Columns[1].Athletes)
	require.Len(t, v.Columns[2].Athletes, 1)
	assert.Equal(t, "Bruno", v.Columns[2].Athletes[0].FirstName)
	assert.Equal(t, 2, v.Columns[2].Total)

	assert.Equal(t, before, b.Columns())

	b.SetQuery("")
	v = b.View()
	assert.Len(t, v.Columns[2].Athletes, 2)
	assert.Len(t, v.Columns[0].Athletes, 1)
}

func TestBoard_ViewBeforeLoad(t *testing.T) {
	t.Parallel()

	b := New(newFakeBackend())
	v := b.View()
	assert.Equal(t, StatusIdle, v.Status)
	assert.Nil(t, v.Columns)
}

func TestView_Arrange(t *testing.T) {
	t.Parallel()

	v := View{Columns: []ColumnView{
		{ID: Unassigned, Label: UnassignedLabel},
		{ID: 10, Label: "A"},
		{ID: 20, Label: "B"},
		{ID: 30, Label: "C"},
	}}

	hidden := func(id types.ProgramID) bool { return id == 20 }
	pinned := func(id types.ProgramID) bool { return id == 30 || id == Unassigned }

	got := v.Arrange(hidden, pinned)

	labels := make([]string, len(got.Columns))
	for i, c := range got.Columns {
		labels[i] = c.Label
	}
	assert.Equal(t, []string{UnassignedLabel, "C", "A"}, labels)
	assert.Len(t, v.Columns, 4, "original view must not change")

	assert.Equal(t, v.Columns, v.Arrange(nil, nil).Columns)
}
