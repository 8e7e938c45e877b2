package tui

import (
	"context"
	"errors"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/tui/state"
	"github.com/thenoetrevino/plantel/internal/types"
)

type assignCall struct {
	athlete  types.AthleteID
	program  types.ProgramID
	position int
}

// fakeBackend serves a small board: Ana and Bruno in Fuerza, Carla in
// Rehabilitación, Diego unassigned
type fakeBackend struct {
	mu        sync.Mutex
	listErr   error
	assignErr error
	calls     []assignCall
}

func (f *fakeBackend) ListAthletes(ctx context.Context) ([]*models.Athlete, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*models.Athlete{
		{ID: 1, FirstName: "Ana", LastName: "Torres", SecondLastName: "Ríos", Age: 17, Sport: "Natación"},
		{ID: 2, FirstName: "Bruno", LastName: "Díaz", SecondLastName: "León", Age: 19, Sport: "Atletismo"},
		{ID: 3, FirstName: "Carla", LastName: "Vega", SecondLastName: "Mora", Age: 22, Sport: "Natación"},
		{ID: 4, FirstName: "Diego", LastName: "Herrera", Age: 16, Sport: "Atletismo"},
	}, nil
}

func (f *fakeBackend) ListPrograms(ctx context.Context) ([]*models.Program, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []*models.Program{
		{ID: 10, Name: "Fuerza", AthleteIDs: []types.AthleteID{1, 2}},
		{ID: 20, Name: "Rehabilitación", AthleteIDs: []types.AthleteID{3}},
	}, nil
}

func (f *fakeBackend) AssignAthlete(ctx context.Context, athlete types.AthleteID, program types.ProgramID, position int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, assignCall{athlete, program, position})
	return f.assignErr
}

func (f *fakeBackend) Calls() []assignCall {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]assignCall(nil), f.calls...)
}

// setupTestModel returns a loaded model on a 200x50 terminal. Preferences
// are never written to disk.
func setupTestModel(t *testing.T, backend *fakeBackend) Model {
	t.Helper()
	m := InitialModel(context.Background(), board.New(backend), config.Default())
	m.save = func(*config.Config) error { return nil }

	msg := m.loadBoard()()
	m = update(t, m, msg)
	m = update(t, m, tea.WindowSizeMsg{Width: 200, Height: 50})
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "Update returned %T", next)
	return out
}

// press sends one key and drops the returned command
func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	return update(t, m, keyMsg(key))
}

// pressAndRun sends one key and runs the returned command, feeding its
// message back into the model
func pressAndRun(t *testing.T, m Model, key string) Model {
	t.Helper()
	next, cmd := m.Update(keyMsg(key))
	m = next.(Model)
	if cmd == nil {
		return m
	}
	switch msg := cmd().(type) {
	case moveConfirmedMsg, prefsSavedMsg, boardLoadedMsg:
		m = update(t, m, msg)
	}
	return m
}

func keyMsg(key string) tea.KeyPressMsg {
	switch key {
	case "space":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeySpace, Text: " "})
	case "enter":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEnter})
	case "esc":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyEscape})
	case "right":
		return tea.KeyPressMsg(tea.Key{Code: tea.KeyRight})
	default:
		r := []rune(key)[0]
		return tea.KeyPressMsg(tea.Key{Text: key, Code: r})
	}
}

func columnIDs(m Model) []types.ProgramID {
	var ids []types.ProgramID
	for _, c := range m.columns() {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestLoad_ShowsColumns(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	assert.False(t, m.loading)
	assert.Equal(t, []types.ProgramID{board.Unassigned, 10, 20}, columnIDs(m))
}

func TestLoad_ErrorThenRetry(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{listErr: errors.New("connection refused")}
	m := setupTestModel(t, backend)

	status, err := m.Board.Status()
	require.Equal(t, board.StatusError, status)
	require.Error(t, err)
	assert.Contains(t, m.View().Content, "Could not load the board")

	// navigation is ignored on the error screen
	m = press(t, m, "l")
	assert.Equal(t, 0, m.UiState.SelectedColumn())

	backend.mu.Lock()
	backend.listErr = nil
	backend.mu.Unlock()

	next, cmd := m.Update(keyMsg("r"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Contains(t, m.View().Content, "Loading athletes and programs")

	m = update(t, m, m.loadBoard()())
	status, _ = m.Board.Status()
	assert.Equal(t, board.StatusReady, status)
	assert.Contains(t, m.View().Content, "Fuerza")
}

func TestNormalMode_Navigation(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	m = press(t, m, "h")
	assert.Equal(t, 0, m.UiState.SelectedColumn())
	require.Len(t, m.Notifications.All(), 1)
	assert.Equal(t, "Already at the first column", m.Notifications.All()[0].Message)

	m = press(t, m, "l")
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.False(t, m.Notifications.HasAny(), "key press clears notifications")

	m = press(t, m, "j")
	assert.Equal(t, 1, m.UiState.SelectedCard())
	m = press(t, m, "j")
	assert.Equal(t, 1, m.UiState.SelectedCard(), "stays on the last card")

	// Rehabilitación has one card; the cursor is clamped
	m = press(t, m, "right")
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedCard())

	m = press(t, m, "k")
	assert.Equal(t, 0, m.UiState.SelectedCard())
}

func TestDrag_MoveToAnotherColumn(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	m := setupTestModel(t, backend)

	// Bruno: Fuerza, second card
	m = press(t, m, "l")
	m = press(t, m, "j")
	m = press(t, m, "space")
	require.Equal(t, state.DragMode, m.UiState.Mode())
	session, ok := m.Board.Drag().Session()
	require.True(t, ok)
	assert.Equal(t, types.AthleteID(2), session.Athlete)

	// carry to Rehabilitación, before Carla
	m = press(t, m, "l")
	m = press(t, m, "k")
	session, _ = m.Board.Drag().Session()
	require.NotNil(t, session.Target)
	assert.Equal(t, board.Target{Column: 20, Card: 3, Edge: board.EdgeTop}, *session.Target)
	assert.Contains(t, m.View().Content, "drop here")

	m = pressAndRun(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, []types.AthleteID{2, 3}, m.Board.Lookup(20))
	assert.Equal(t, []types.AthleteID{1}, m.Board.Lookup(10))
	assert.Equal(t, []assignCall{{athlete: 2, program: 20, position: 0}}, backend.Calls())

	// cursor follows the card
	assert.Equal(t, 2, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedCard())
	require.True(t, m.Notifications.HasAny())
	assert.Equal(t, "Moved Bruno Díaz León to Rehabilitación", m.Notifications.All()[0].Message)
}

func TestDrag_EndOfColumnUsesBottomEdge(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	m := setupTestModel(t, backend)

	// Diego is the only unassigned athlete
	m = press(t, m, "space")
	m = press(t, m, "l")
	m = press(t, m, "j")
	m = press(t, m, "j")
	m = press(t, m, "j")

	session, _ := m.Board.Drag().Session()
	require.NotNil(t, session.Target)
	assert.Equal(t, board.Target{Column: 10, Card: 2, Edge: board.EdgeBottom}, *session.Target)

	m = pressAndRun(t, m, "enter")
	assert.Equal(t, []types.AthleteID{1, 2, 4}, m.Board.Lookup(10))
	assert.Empty(t, m.Board.Unassigned())
	assert.Equal(t, []assignCall{{athlete: 4, program: 10, position: 2}}, backend.Calls())
}

func TestDrag_DropInPlaceSkipsBackend(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	m := setupTestModel(t, backend)

	m = press(t, m, "l")
	m = press(t, m, "space")
	m = press(t, m, "enter")

	assert.Empty(t, backend.Calls())
	assert.Equal(t, []types.AthleteID{1, 2}, m.Board.Lookup(10))
	require.True(t, m.Notifications.HasAny())
	assert.Contains(t, m.Notifications.All()[0].Message, "already there")
}

func TestDrag_CancelLeavesBoardUntouched(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	m := setupTestModel(t, backend)

	m = press(t, m, "l")
	m = press(t, m, "space")
	m = press(t, m, "l")
	m = press(t, m, "esc")

	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, board.PhaseIdle, m.Board.Drag().Phase())
	assert.Equal(t, board.PhaseCancelled, m.Board.Drag().LastOutcome())
	assert.Equal(t, []types.AthleteID{1, 2}, m.Board.Lookup(10))
	assert.Empty(t, backend.Calls())
}

func TestDrag_RejectedMoveRollsBack(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{assignErr: errors.New("program is full")}
	m := setupTestModel(t, backend)

	m = press(t, m, "l")
	m = press(t, m, "space")
	m = press(t, m, "l")

	next, cmd := m.Update(keyMsg("enter"))
	m = next.(Model)
	require.NotNil(t, cmd)
	// applied locally before the backend answers
	assert.Equal(t, []types.AthleteID{1, 3}, m.Board.Lookup(20))

	m = update(t, m, cmd())
	assert.Equal(t, []types.AthleteID{1, 2}, m.Board.Lookup(10))
	assert.Equal(t, []types.AthleteID{3}, m.Board.Lookup(20))

	require.True(t, m.Notifications.HasAny())
	n := m.Notifications.All()[0]
	assert.Equal(t, state.LevelError, n.Level)
	assert.Equal(t, "Could not move Ana Torres Ríos to Rehabilitación, it is back in Fuerza", n.Message)
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	assert.Equal(t, 0, m.UiState.SelectedCard())
}

func TestPickUp_EmptyColumn(t *testing.T) {
	t.Parallel()
	backend := &fakeBackend{}
	m := setupTestModel(t, backend)

	// move Diego out so Unassigned is empty
	m = press(t, m, "space")
	m = press(t, m, "l")
	m = press(t, m, "enter")
	m = press(t, m, "h")
	m = press(t, m, "h")
	require.Equal(t, 0, m.UiState.SelectedColumn())

	m = press(t, m, "space")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	require.True(t, m.Notifications.HasAny())
	assert.Equal(t, "No athlete selected", m.Notifications.All()[0].Message)
}

func TestSearch_FiltersAsYouType(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	m = press(t, m, "/")
	require.Equal(t, state.SearchMode, m.UiState.Mode())
	for _, k := range []string{"v", "e", "g"} {
		m = press(t, m, k)
	}
	assert.Equal(t, "veg", m.Board.Query())

	cols := m.columns()
	require.Len(t, cols, 3)
	assert.Empty(t, cols[1].Athletes)
	assert.Equal(t, 2, cols[1].Total)
	require.Len(t, cols[2].Athletes, 1)
	assert.Equal(t, types.AthleteID(3), cols[2].Athletes[0].ID)

	m = press(t, m, "enter")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, "veg", m.Board.Query(), "enter keeps the filter")
	assert.Contains(t, m.View().Content, "Rehabilitación (1/1)")

	m = press(t, m, "esc")
	assert.Empty(t, m.Board.Query(), "esc in normal mode clears the filter")
}

func TestSearch_EscClears(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	m = press(t, m, "/")
	m = press(t, m, "a")
	require.Equal(t, "a", m.Board.Query())

	m = press(t, m, "esc")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Empty(t, m.Board.Query())
}

func TestPreferences_HideAndPin(t *testing.T) {
	t.Parallel()
	var saved []config.Preferences
	m := setupTestModel(t, &fakeBackend{})
	m.save = func(c *config.Config) error {
		saved = append(saved, c.Preferences)
		return nil
	}

	// the unassigned column stays
	m = pressAndRun(t, m, "x")
	assert.Equal(t, []types.ProgramID{board.Unassigned, 10, 20}, columnIDs(m))
	assert.Empty(t, saved)

	// pin Rehabilitación: it moves right after Unassigned, cursor follows
	m = press(t, m, "l")
	m = press(t, m, "l")
	m = pressAndRun(t, m, "p")
	assert.Equal(t, []types.ProgramID{board.Unassigned, 20, 10}, columnIDs(m))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	require.Len(t, saved, 1)
	assert.Equal(t, []int{20}, saved[0].PinnedColumns)

	// hide Fuerza
	m = press(t, m, "l")
	m = pressAndRun(t, m, "x")
	assert.Equal(t, []types.ProgramID{board.Unassigned, 20}, columnIDs(m))
	assert.Equal(t, 1, m.UiState.SelectedColumn())
	require.Len(t, saved, 2)
	assert.Equal(t, []int{10}, saved[1].HiddenColumns)
	assert.Contains(t, m.View().Content, "1 hidden")
}

func TestPreferences_SaveFailureNotifies(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})
	m.save = func(*config.Config) error { return errors.New("read-only file system") }

	m = pressAndRun(t, m, "d")
	assert.True(t, m.Config.Preferences.Compact())

	var levels []state.NotificationLevel
	for _, n := range m.Notifications.All() {
		levels = append(levels, n.Level)
	}
	assert.Equal(t, []state.NotificationLevel{state.LevelInfo, state.LevelError}, levels)
}

func TestHelpMode(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	m = press(t, m, "?")
	require.Equal(t, state.HelpMode, m.UiState.Mode())
	assert.Contains(t, m.View().Content, "Keyboard shortcuts")

	m = press(t, m, "j")
	assert.Equal(t, state.NormalMode, m.UiState.Mode())
	assert.Equal(t, 0, m.UiState.SelectedCard(), "the closing key is not replayed")
}

func TestQuit(t *testing.T) {
	t.Parallel()
	m := setupTestModel(t, &fakeBackend{})

	_, cmd := m.Update(keyMsg("q"))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
