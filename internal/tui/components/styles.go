// Package components provides reusable UI components and styles.
// Call InitStyles() before use to initialize all style variables.
package components

import (
	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/config/colors"
	"github.com/thenoetrevino/plantel/internal/tui/theme"
)

// Card and column dimensions
const (
	ColumnContentWidth = 32
	CardWidth          = 30

	// comfortable cards: two text lines plus top and bottom border
	CardHeight = 4
	// compact cards: one borderless line
	CompactCardHeight = 1
)

// These are cached to avoid recomputing on every redraw.
var (
	// ColumnStyle defines the appearance of board columns
	ColumnStyle lipgloss.Style

	// SelectedColumnStyle marks the column holding the cursor
	SelectedColumnStyle lipgloss.Style

	// DropColumnStyle marks the column under a carried card
	DropColumnStyle lipgloss.Style

	// CardStyle defines the appearance of athlete cards
	CardStyle lipgloss.Style

	// CompactCardStyle is the single-line card used in compact density
	CompactCardStyle lipgloss.Style

	// TitleStyle defines the appearance of titles (column names, app header)
	TitleStyle lipgloss.Style

	// BadgeStyle renders the initials on a card
	BadgeStyle lipgloss.Style

	// DropLineStyle renders the insertion marker while dragging
	DropLineStyle lipgloss.Style

	// IndicatorStyle defines the appearance of scroll indicators
	IndicatorStyle lipgloss.Style

	// EmptyStyle renders placeholders for empty columns
	EmptyStyle lipgloss.Style

	// StatusBarStyle defines the base style for the status bar
	StatusBarStyle lipgloss.Style

	// StatusBarModeStyle highlights the mode segment of the status bar
	StatusBarModeStyle lipgloss.Style

	// HelpBoxStyle defines the base style for help screen
	HelpBoxStyle lipgloss.Style

	// ErrorBoxStyle frames the load error screen
	ErrorBoxStyle lipgloss.Style
)

func init() {
	InitStyles(*colors.Default())
}

// InitStyles initializes all styles with the given color scheme
func InitStyles(colors colors.ColorScheme) {
	theme.Init(colors)

	ColumnStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ColumnBorder)).
		PaddingLeft(1).
		PaddingRight(1).
		Width(ColumnContentWidth)

	SelectedColumnStyle = ColumnStyle.
		BorderForeground(lipgloss.Color(colors.Accent))

	DropColumnStyle = ColumnStyle.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color(colors.DropTarget))

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.CardBorder)).
		BorderBackground(lipgloss.Color(colors.CardBackground)).
		Background(lipgloss.Color(colors.CardBackground)).
		Foreground(lipgloss.Color(colors.Normal)).
		Width(CardWidth)

	CompactCardStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Normal)).
		Width(CardWidth)

	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Title))

	BadgeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Accent))

	DropLineStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.DropTarget))

	IndicatorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Align(lipgloss.Center).
		Width(CardWidth)

	EmptyStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.Subtle)).
		Italic(true).
		Padding(1, 0)

	StatusBarStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(colors.StatusBarText)).
		Background(lipgloss.Color(colors.StatusBarBg))

	StatusBarModeStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.StatusBarBg)).
		Background(lipgloss.Color(colors.Accent)).
		Padding(0, 1)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.Accent)).
		Padding(1, 2)

	ErrorBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(colors.ErrorBg)).
		Padding(1, 2)
}
