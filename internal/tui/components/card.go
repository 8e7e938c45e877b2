package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/tui/theme"
)

// CardProps describes how one athlete card is drawn
type CardProps struct {
	Athlete  *models.Athlete
	Selected bool
	// Dragging marks the card being carried; it stays in place, dimmed
	Dragging bool
	Compact  bool
}

// RenderCard renders a single athlete as a card
//
//	╭──────────────────────────────╮
//	│ AT Ana Torres Ríos           │
//	│ 17 · Natación · Juvenil      │
//	╰──────────────────────────────╯
//
// Compact density drops the border and the details line.
func RenderCard(props CardProps) string {
	a := props.Athlete
	badge := BadgeStyle.Render(padRight(a.Initials(), 2))

	if props.Compact {
		style := CompactCardStyle
		marker := "  "
		switch {
		case props.Dragging:
			style = style.Foreground(lipgloss.Color(theme.Dragging)).Italic(true)
			marker = "≡ "
		case props.Selected:
			style = style.Background(lipgloss.Color(theme.SelectedBg)).Bold(true)
			marker = "▌ "
		}
		return style.Render(marker + badge + " " + truncate(a.FullName(), CardWidth-6))
	}

	name := lipgloss.NewStyle().Bold(true).Render(truncate(a.FullName(), CardWidth-5))
	details := lipgloss.NewStyle().
		Foreground(lipgloss.Color(theme.Subtle)).
		Render(truncate(cardDetails(a), CardWidth-2))

	style := CardStyle
	switch {
	case props.Dragging:
		style = style.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color(theme.Dragging)).
			Foreground(lipgloss.Color(theme.Dragging)).
			Faint(true)
	case props.Selected:
		style = style.
			BorderForeground(lipgloss.Color(theme.SelectedBorder)).
			BorderBackground(lipgloss.Color(theme.SelectedBg)).
			Background(lipgloss.Color(theme.SelectedBg))
	}
	return style.Render(" " + badge + " " + name + "\n " + details)
}

func cardDetails(a *models.Athlete) string {
	parts := make([]string, 0, 3)
	if a.Age > 0 {
		parts = append(parts, fmt.Sprintf("%d", a.Age))
	}
	if a.Sport != "" {
		parts = append(parts, a.Sport)
	}
	if a.Category != "" {
		parts = append(parts, a.Category)
	}
	if len(parts) == 0 {
		return "no details"
	}
	return strings.Join(parts, " · ")
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}

func padRight(s string, n int) string {
	if w := lipgloss.Width(s); w < n {
		return s + strings.Repeat(" ", n-w)
	}
	return s
}
