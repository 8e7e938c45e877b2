package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/tui/components"
	"github.com/thenoetrevino/plantel/internal/tui/notifications"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// View renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func (m Model) View() tea.View {
	var view tea.View
	view.AltScreen = true

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	status, err := m.Board.Status()
	switch {
	case m.loading:
		view.Content = m.viewLoading()
	case status == board.StatusError:
		view.Content = m.viewError(err)
	case m.UiState.Mode() == state.HelpMode:
		view.Content = m.viewHelp()
	default:
		view.Content = m.viewBoard()
	}
	return view
}

func (m Model) center(content string) string {
	return lipgloss.Place(m.UiState.Width(), m.UiState.Height(), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) viewLoading() string {
	return m.center(m.spinner.View() + " Loading athletes and programs...")
}

func (m Model) viewError(err error) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	body := components.TitleStyle.Render("Could not load the board") + "\n\n" +
		msg + "\n\n" +
		fmt.Sprintf("press %s to retry, %s to quit", m.Config.KeyMappings.Retry, m.Config.KeyMappings.Quit)
	return m.center(components.ErrorBoxStyle.Render(body))
}

func (m Model) viewBoard() string {
	cols := m.columns()
	header := components.TitleStyle.Render("Plantel") +
		components.EmptyStyle.Padding(0).Render(fmt.Sprintf("  %d athletes · %d programs", m.Board.Registry().Len(), len(m.Board.Columns())))

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(m.viewColumns(cols))
	b.WriteString("\n")

	if m.UiState.Mode() == state.SearchMode {
		b.WriteString(m.search.View())
		b.WriteString("\n")
	}
	if m.Notifications.HasAny() {
		b.WriteString(notifications.RenderAll(m.Notifications.All(), m.UiState.Width()))
		b.WriteString("\n")
	}
	b.WriteString(components.RenderStatusBar(components.StatusBarProps{
		Width:  m.UiState.Width(),
		Mode:   m.UiState.Mode().String(),
		Query:  m.Board.Query(),
		Hidden: len(m.Config.Preferences.HiddenColumns),
		Hint:   m.hint(),
	}))
	return b.String()
}

// viewColumns renders the columns inside the horizontal viewport
func (m Model) viewColumns(cols []board.ColumnView) string {
	if len(cols) == 0 {
		return components.EmptyStyle.Render("No columns")
	}

	session, dragging := m.Board.Drag().Session()
	hoverCol, hoverSlot := m.UiState.Hover()
	dragMode := m.UiState.Mode() == state.DragMode && dragging

	start := min(m.UiState.ViewportOffset(), len(cols)-1)
	end := min(start+m.UiState.ViewportSize(), len(cols))

	rendered := make([]string, 0, end-start+2)
	if start > 0 {
		rendered = append(rendered, components.IndicatorStyle.Width(2).Render("◀"))
	}
	for i := start; i < end; i++ {
		col := cols[i]
		props := components.ColumnProps{
			Label:        col.Label,
			Total:        col.Total,
			Cards:        col.Athletes,
			Filtered:     m.Board.Query() != "",
			Pinned:       col.ID != board.Unassigned && m.Config.Preferences.IsPinned(col.ID.ToInt()),
			Selected:     !dragMode && i == m.UiState.SelectedColumn(),
			SelectedCard: m.UiState.SelectedCard(),
			DropSlot:     components.NoSlot,
			Compact:      m.Config.Preferences.Compact(),
			Height:       m.UiState.ContentHeight(),
			ScrollOffset: m.UiState.CardScrollOffset(col.ID),
		}
		if dragMode {
			props.Dragging = session.Athlete
			if i == hoverCol {
				props.DropTarget = true
				props.DropSlot = hoverSlot
			}
		}
		rendered = append(rendered, components.RenderColumn(props), " ")
	}
	if end < len(cols) {
		rendered = append(rendered, components.IndicatorStyle.Width(2).Render("▶"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// hint is the key reminder on the right of the status bar
func (m Model) hint() string {
	km := m.Config.KeyMappings
	switch m.UiState.Mode() {
	case state.DragMode:
		return fmt.Sprintf("%s/%s column  %s/%s position  %s drop  %s cancel",
			km.PrevColumn, km.NextColumn, km.PrevCard, km.NextCard, km.Drop, km.Cancel)
	case state.SearchMode:
		return "enter keep filter  esc clear"
	default:
		return fmt.Sprintf("%s pick up  %s search  %s help", km.PickUp, km.Search, km.ShowHelp)
	}
}
