package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/config"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// handleNormalMode dispatches keyboard input in normal mode.
// Arrow keys work alongside the configured vim-style bindings.
func (m Model) handleNormalMode(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings

	switch key {
	case km.Quit:
		return m, tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return m, nil
	case km.PrevColumn, "left":
		return m.handleNavigateLeft()
	case km.NextColumn, "right":
		return m.handleNavigateRight()
	case km.PrevCard, "up":
		return m.handleNavigateUp()
	case km.NextCard, "down":
		return m.handleNavigateDown()
	case km.PickUp:
		return m.handlePickUp()
	case km.Search:
		return m.handleStartSearch()
	case km.Cancel:
		if m.Board.Query() != "" {
			m.Board.SetQuery("")
			m.search.SetValue("")
			m.clampSelection()
		}
		return m, nil
	case km.Refresh:
		return m.reload()
	case km.ToggleDensity:
		return m.handleToggleDensity()
	case km.HideColumn:
		return m.handleHideColumn()
	case km.PinColumn:
		return m.handlePinColumn()
	}
	return m, nil
}

func (m Model) handleNavigateLeft() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedColumn() == 0 {
		m.notify(state.LevelInfo, "Already at the first column")
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() - 1)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateRight() (tea.Model, tea.Cmd) {
	cols := m.columns()
	if m.UiState.SelectedColumn() >= len(cols)-1 {
		m.notify(state.LevelInfo, "Already at the last column")
		return m, nil
	}
	m.UiState.SetSelectedColumn(m.UiState.SelectedColumn() + 1)
	m.clampSelection()
	return m, nil
}

func (m Model) handleNavigateUp() (tea.Model, tea.Cmd) {
	if m.UiState.SelectedCard() > 0 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() - 1)
		m.syncScroll(m.columns())
	}
	return m, nil
}

func (m Model) handleNavigateDown() (tea.Model, tea.Cmd) {
	cols := m.columns()
	col, _, ok := m.selection(cols)
	if ok && m.UiState.SelectedCard() < len(col.Athletes)-1 {
		m.UiState.SetSelectedCard(m.UiState.SelectedCard() + 1)
		m.syncScroll(cols)
	}
	return m, nil
}

// handlePickUp starts a drag of the selected card. The drop cursor starts on
// the card itself, so dropping right away changes nothing.
func (m Model) handlePickUp() (tea.Model, tea.Cmd) {
	cols := m.columns()
	col, athlete, ok := m.selection(cols)
	if !ok || athlete == nil {
		m.notify(state.LevelWarning, "No athlete selected")
		return m, nil
	}
	if err := m.Board.Drag().Start(athlete.ID, col.ID); err != nil {
		m.notify(state.LevelError, err.Error())
		return m, nil
	}

	m.UiState.SetMode(state.DragMode)
	m.UiState.SetHover(m.UiState.SelectedColumn(), m.UiState.SelectedCard())
	m.hover(cols)
	return m, nil
}

func (m Model) handleStartSearch() (tea.Model, tea.Cmd) {
	m.search.SetValue(m.Board.Query())
	m.search.CursorEnd()
	cmd := m.search.Focus()
	m.UiState.SetMode(state.SearchMode)
	return m, cmd
}

func (m Model) handleToggleDensity() (tea.Model, tea.Cmd) {
	next := config.DensityCompact
	if m.Config.Preferences.Compact() {
		next = config.DensityComfortable
	}
	if err := m.Config.Preferences.SetDensity(next); err != nil {
		m.notify(state.LevelError, err.Error())
		return m, nil
	}
	m.clampSelection()
	m.notify(state.LevelInfo, fmt.Sprintf("Density: %s", next))
	return m, m.savePrefs()
}

func (m Model) handleHideColumn() (tea.Model, tea.Cmd) {
	col, _, ok := m.selection(m.columns())
	if !ok {
		return m, nil
	}
	if col.ID == board.Unassigned {
		m.notify(state.LevelWarning, "The unassigned column cannot be hidden")
		return m, nil
	}

	m.Config.Preferences.ToggleHidden(col.ID.ToInt())
	m.clampSelection()
	m.notify(state.LevelInfo, fmt.Sprintf("Hid %s; show it again with: plantel prefs set --show %d", col.Label, col.ID.ToInt()))
	return m, m.savePrefs()
}

func (m Model) handlePinColumn() (tea.Model, tea.Cmd) {
	col, _, ok := m.selection(m.columns())
	if !ok {
		return m, nil
	}
	if col.ID == board.Unassigned {
		m.notify(state.LevelWarning, "The unassigned column is always first")
		return m, nil
	}

	m.Config.Preferences.TogglePinned(col.ID.ToInt())
	m.selectColumn(m.columns(), col.ID)
	if m.Config.Preferences.IsPinned(col.ID.ToInt()) {
		m.notify(state.LevelInfo, fmt.Sprintf("Pinned %s", col.Label))
	} else {
		m.notify(state.LevelInfo, fmt.Sprintf("Unpinned %s", col.Label))
	}
	return m, m.savePrefs()
}
