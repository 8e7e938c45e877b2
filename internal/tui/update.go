package tui

import (
	"fmt"
	"log/slog"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"
	"github.com/thenoetrevino/plantel/internal/board"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// Update handles all incoming messages and returns the updated model and command.
// This implements the "Update" part of the Model-View-Update pattern.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.UiState.SetWidth(msg.Width)
		m.UiState.SetHeight(msg.Height)
		m.clampSelection()
		return m, nil

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case boardLoadedMsg:
		m.loading = false
		if msg.err == nil {
			m.clampSelection()
		}
		return m, nil

	case moveConfirmedMsg:
		return m.handleMoveConfirmed(msg)

	case prefsSavedMsg:
		if msg.err != nil {
			slog.Error("failed to save preferences", "error", msg.err)
			m.notify(state.LevelError, fmt.Sprintf("Could not save preferences: %v", msg.err))
		}
		return m, nil

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes a key press by load status and mode
func (m Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		m.Board.Drag().Cancel()
		return m, tea.Quit
	}

	if m.loading {
		return m, nil
	}

	if status, _ := m.Board.Status(); status != board.StatusReady {
		switch key {
		case m.Config.KeyMappings.Retry:
			return m.reload()
		case m.Config.KeyMappings.Quit:
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.UiState.Mode() {
	case state.DragMode:
		return m.handleDragMode(key)
	case state.SearchMode:
		return m.handleSearchMode(msg)
	case state.HelpMode:
		m.UiState.SetMode(state.NormalMode)
		return m, nil
	default:
		m.Notifications.Clear()
		return m.handleNormalMode(key)
	}
}

// handleMoveConfirmed reports the backend's verdict on a dropped card
func (m Model) handleMoveConfirmed(msg moveConfirmedMsg) (tea.Model, tea.Cmd) {
	mv := msg.commit.Move()
	if msg.err == nil {
		m.notify(state.LevelInfo, fmt.Sprintf("Moved %s to %s", msg.name, m.columnLabel(mv.To)))
		return m, nil
	}

	slog.Error("move rejected", "athlete", mv.Athlete.ToInt(), "to", mv.To.ToInt(), "error", msg.err)
	if msg.commit.RolledBack() {
		m.notify(state.LevelError, fmt.Sprintf("Could not move %s to %s, it is back in %s", msg.name, m.columnLabel(mv.To), m.columnLabel(msg.commit.RestoredTo())))
	} else {
		m.notify(state.LevelWarning, fmt.Sprintf("Could not move %s to %s; a newer change was kept", msg.name, m.columnLabel(mv.To)))
	}
	if m.UiState.Mode() == state.NormalMode {
		m.follow(mv.Athlete)
	}
	return m, nil
}
