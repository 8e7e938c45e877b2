// Package tui is the interactive board screen: athletes as cards in program
// columns, moved with a keyboard drag.
package tui

import (
	"context"
	"slices"

	"charm.land/bubbles/v2/spinner"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/tui/components"
	"github.com/thenoetrevino/plantel/internal/tui/state"
	"github.com/thenoetrevino/plantel/internal/tui/theme"
	"github.com/thenoetrevino/plantel/internal/types"
)

// Model is the bubbletea model of the board screen
type Model struct {
	ctx           context.Context
	Board         *board.Board
	Config        *config.Config
	UiState       *state.UIState
	Notifications *state.NotificationState

	spinner spinner.Model
	search  textinput.Model
	loading bool

	// save persists preferences; replaced in tests
	save func(*config.Config) error
}

// boardLoadedMsg reports the end of a load or reload
type boardLoadedMsg struct {
	err error
}

// moveConfirmedMsg carries the backend's answer for a dropped card
type moveConfirmedMsg struct {
	commit *board.Commit
	name   string
	err    error
}

// prefsSavedMsg reports the result of writing the config file
type prefsSavedMsg struct {
	err error
}

// InitialModel creates a model that starts loading b as soon as the
// program runs
func InitialModel(ctx context.Context, b *board.Board, cfg *config.Config) Model {
	sp := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Highlight))),
	)

	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search athletes"
	search.CharLimit = 100

	return Model{
		ctx:           ctx,
		Board:         b,
		Config:        cfg,
		UiState:       state.NewUIState(),
		Notifications: state.NewNotificationState(),
		spinner:       sp,
		search:        search,
		loading:       true,
		save:          (*config.Config).Save,
	}
}

// Init starts the first load and the spinner
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadBoard())
}

func (m Model) loadBoard() tea.Cmd {
	ctx, b := m.ctx, m.Board
	return func() tea.Msg {
		return boardLoadedMsg{err: b.Load(ctx)}
	}
}

// reload shows the spinner and fetches the board again
func (m Model) reload() (tea.Model, tea.Cmd) {
	m.loading = true
	return m, tea.Batch(m.spinner.Tick, m.loadBoard())
}

func (m Model) confirmMove(commit *board.Commit, name string) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return moveConfirmedMsg{commit: commit, name: name, err: commit.Confirm(ctx)}
	}
}

// savePrefs writes a snapshot of the config so later toggles cannot race
// with the write
func (m Model) savePrefs() tea.Cmd {
	snapshot := *m.Config
	snapshot.Preferences.HiddenColumns = slices.Clone(m.Config.Preferences.HiddenColumns)
	snapshot.Preferences.PinnedColumns = slices.Clone(m.Config.Preferences.PinnedColumns)
	save := m.save
	return func() tea.Msg {
		return prefsSavedMsg{err: save(&snapshot)}
	}
}

// ============================================================================
// Board accessors
// ============================================================================

// columns returns the filtered board arranged by the user's preferences
func (m Model) columns() []board.ColumnView {
	prefs := m.Config.Preferences
	view := m.Board.View().Arrange(
		func(id types.ProgramID) bool { return prefs.IsHidden(id.ToInt()) },
		func(id types.ProgramID) bool { return prefs.IsPinned(id.ToInt()) },
	)
	return view.Columns
}

// selection returns the column and card under the cursor. The athlete is
// nil when the column is empty.
func (m Model) selection(cols []board.ColumnView) (board.ColumnView, *models.Athlete, bool) {
	i := m.UiState.SelectedColumn()
	if i < 0 || i >= len(cols) {
		return board.ColumnView{}, nil, false
	}
	col := cols[i]
	j := m.UiState.SelectedCard()
	if j < 0 || j >= len(col.Athletes) {
		return col, nil, true
	}
	return col, col.Athletes[j], true
}

// clampSelection keeps the cursor on the board after it changed shape
func (m Model) clampSelection() {
	cols := m.columns()
	m.UiState.ClampSelection(len(cols), func(i int) int { return len(cols[i].Athletes) })
	m.syncScroll(cols)
}

// follow moves the cursor to wherever athlete currently is
func (m Model) follow(athlete types.AthleteID) {
	cols := m.columns()
	for i, col := range cols {
		for j, a := range col.Athletes {
			if a.ID == athlete {
				m.UiState.SetSelectedColumn(i)
				m.UiState.SetSelectedCard(j)
				m.syncScroll(cols)
				return
			}
		}
	}
	m.UiState.ClampSelection(len(cols), func(i int) int { return len(cols[i].Athletes) })
	m.syncScroll(cols)
}

// selectColumn moves the cursor to the column with the given id
func (m Model) selectColumn(cols []board.ColumnView, id types.ProgramID) {
	for i, col := range cols {
		if col.ID == id {
			m.UiState.SetSelectedColumn(i)
			break
		}
	}
	m.UiState.ClampSelection(len(cols), func(i int) int { return len(cols[i].Athletes) })
	m.syncScroll(cols)
}

// syncScroll keeps the selected card, or the drop slot while dragging,
// inside its column's visible window
func (m Model) syncScroll(cols []board.ColumnView) {
	visible := components.VisibleCards(m.UiState.ContentHeight(), m.Config.Preferences.Compact())
	if m.UiState.Mode() == state.DragMode {
		c, slot := m.UiState.Hover()
		if c >= 0 && c < len(cols) {
			m.UiState.EnsureColumnVisible(c)
			m.UiState.EnsureCardVisible(cols[c].ID, min(slot, max(len(cols[c].Athletes)-1, 0)), visible)
		}
		return
	}
	c := m.UiState.SelectedColumn()
	if c >= 0 && c < len(cols) {
		m.UiState.EnsureColumnVisible(c)
		m.UiState.EnsureCardVisible(cols[c].ID, m.UiState.SelectedCard(), visible)
	}
}

func (m Model) columnLabel(id types.ProgramID) string {
	if id == board.Unassigned {
		return board.UnassignedLabel
	}
	for _, col := range m.Board.View().Columns {
		if col.ID == id {
			return col.Label
		}
	}
	return "program"
}

func (m Model) notify(level state.NotificationLevel, msg string) {
	m.Notifications.Add(level, msg)
}
