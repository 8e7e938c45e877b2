package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
)

// StatusBarProps holds what the status bar shows
type StatusBarProps struct {
	Width  int
	Mode   string
	Query  string
	Hidden int
	Hint   string
}

// RenderStatusBar renders a status bar with left and right aligned text
// Left side: mode, active search and hidden column count
// Right side: a key hint for the current mode
func RenderStatusBar(props StatusBarProps) string {
	left := StatusBarModeStyle.Render(props.Mode)
	var details []string
	if props.Query != "" {
		details = append(details, fmt.Sprintf("/%s", props.Query))
	}
	if props.Hidden > 0 {
		details = append(details, fmt.Sprintf("%d hidden", props.Hidden))
	}
	if len(details) > 0 {
		left += StatusBarStyle.Render(" " + strings.Join(details, "  "))
	}

	right := StatusBarStyle.Render(props.Hint + " ")

	gapWidth := max(props.Width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	gap := StatusBarStyle.Render(strings.Repeat(" ", gapWidth))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, gap, right)
}
