package tui

import (
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// handleSearchMode feeds keys to the search box and filters the board as
// the query changes. Enter keeps the filter, esc clears it.
func (m Model) handleSearchMode(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.search.Blur()
		m.UiState.SetMode(state.NormalMode)
		m.UiState.SetSelectedCard(0)
		m.clampSelection()
		return m, nil
	case "esc":
		m.search.Blur()
		m.search.SetValue("")
		m.Board.SetQuery("")
		m.UiState.SetMode(state.NormalMode)
		m.clampSelection()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.Board.Query() {
		m.Board.SetQuery(m.search.Value())
		m.UiState.SetSelectedCard(0)
		m.clampSelection()
	}
	return m, cmd
}
