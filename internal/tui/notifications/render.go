package notifications

import (
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/tui/state"
)

// RenderInline renders a one-line notification banner
func RenderInline(severity Severity, message string) string {
	style := severity.style()
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(style.foreground)).
		Background(lipgloss.Color(style.background)).
		Bold(true).
		Padding(0, 1).
		Render(style.icon + " " + message)
}

// RenderFromState renders a banner from a state.Notification
func RenderFromState(n state.Notification) string {
	return RenderInline(SeverityOf(n.Level), n.Message)
}

// RenderAll renders every queued notification on its own line, truncated
// to width
func RenderAll(ns []state.Notification, width int) string {
	lines := make([]string, 0, len(ns))
	for _, n := range ns {
		line := RenderFromState(n)
		if width > 0 && lipgloss.Width(line) > width {
			line = RenderInline(SeverityOf(n.Level), truncate(n.Message, width-6))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// SeverityOf maps a notification level to its banner severity
func SeverityOf(level state.NotificationLevel) Severity {
	switch level {
	case state.LevelWarning:
		return Warning
	case state.LevelError:
		return Error
	default:
		return Info
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
