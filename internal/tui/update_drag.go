package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// handleDragMode moves the drop cursor of the carried card. Columns move
// with h/l, slots within a column with j/k; slot len(cards) is the end.
func (m Model) handleDragMode(key string) (tea.Model, tea.Cmd) {
	km := m.Config.KeyMappings
	cols := m.columns()
	col, slot := m.UiState.Hover()

	switch key {
	case km.PrevColumn, "left":
		if col > 0 {
			col--
		}
	case km.NextColumn, "right":
		if col < len(cols)-1 {
			col++
		}
	case km.PrevCard, "up":
		if slot > 0 {
			slot--
		}
	case km.NextCard, "down":
		slot++
	case km.Drop:
		return m.handleDrop()
	case km.Cancel, km.PickUp:
		m.Board.Drag().Cancel()
		m.UiState.SetMode(state.NormalMode)
		m.notify(state.LevelInfo, "Move cancelled")
		return m, nil
	default:
		return m, nil
	}

	if col < 0 || col >= len(cols) {
		return m, nil
	}
	slot = min(slot, len(cols[col].Athletes))
	m.UiState.SetHover(col, slot)
	m.hover(cols)
	return m, nil
}

// hover reports the drop cursor to the drag controller
func (m Model) hover(cols []board.ColumnView) {
	c, slot := m.UiState.Hover()
	if c < 0 || c >= len(cols) {
		m.Board.Drag().Leave()
		return
	}
	if err := m.Board.Drag().Hover(dropTarget(cols[c], slot)); err != nil {
		m.notify(state.LevelError, err.Error())
	}
	m.syncScroll(cols)
}

// dropTarget turns a slot into a target. A slot before a card is that
// card's top edge; the end of a non-empty column is the last card's bottom
// edge; an empty column is its bare surface.
func dropTarget(col board.ColumnView, slot int) board.Target {
	t := board.Target{Column: col.ID}
	switch n := len(col.Athletes); {
	case n == 0:
	case slot < n:
		t.Card = col.Athletes[slot].ID
		t.Edge = board.EdgeTop
	default:
		t.Card = col.Athletes[n-1].ID
		t.Edge = board.EdgeBottom
	}
	return t
}

// handleDrop ends the drag, applies the move locally and sends it to the
// backend
func (m Model) handleDrop() (tea.Model, tea.Cmd) {
	m.UiState.SetMode(state.NormalMode)

	commit, ok, err := m.Board.DropDrag()
	if err != nil {
		m.notify(state.LevelError, fmt.Sprintf("Cannot move: %v", err))
		m.clampSelection()
		return m, nil
	}
	if !ok {
		m.notify(state.LevelInfo, "Move cancelled")
		return m, nil
	}

	mv := commit.Move()
	name := fmt.Sprintf("athlete %d", mv.Athlete.ToInt())
	if a, found := m.Board.Registry().Get(mv.Athlete); found {
		name = a.FullName()
	}
	m.follow(mv.Athlete)

	if commit.Noop() {
		m.notify(state.LevelInfo, fmt.Sprintf("%s is already there", name))
		return m, nil
	}
	return m, m.confirmMove(commit, name)
}
