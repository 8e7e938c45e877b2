package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/tui/components"
)

type helpEntry struct {
	key  string
	desc string
}

type helpSection struct {
	title   string
	entries []helpEntry
}

func (m Model) helpSections() []helpSection {
	km := m.Config.KeyMappings
	return []helpSection{
		{
			title: "Navigation",
			entries: []helpEntry{
				{km.PrevColumn + " / " + km.NextColumn, "previous / next column"},
				{km.PrevCard + " / " + km.NextCard, "previous / next athlete"},
			},
		},
		{
			title: "Moving athletes",
			entries: []helpEntry{
				{km.PickUp, "pick up the selected athlete"},
				{km.PrevColumn + " / " + km.NextColumn, "carry to another column"},
				{km.PrevCard + " / " + km.NextCard, "choose the position"},
				{km.Drop, "drop"},
				{km.Cancel, "put it back"},
			},
		},
		{
			title: "Board",
			entries: []helpEntry{
				{km.Search, "search by name"},
				{km.Cancel, "clear search"},
				{km.Refresh, "reload from the server"},
				{km.ToggleDensity, "compact / comfortable cards"},
				{km.HideColumn, "hide column"},
				{km.PinColumn, "pin / unpin column"},
			},
		},
		{
			title: "Other",
			entries: []helpEntry{
				{km.ShowHelp, "toggle help"},
				{km.Quit, "quit"},
			},
		},
	}
}

func (m Model) viewHelp() string {
	keyStyle := lipgloss.NewStyle().Bold(true).Width(12)

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard shortcuts"))
	for _, s := range m.helpSections() {
		fmt.Fprintf(&b, "\n\n%s", components.TitleStyle.Render(s.title))
		for _, e := range s.entries {
			fmt.Fprintf(&b, "\n%s %s", keyStyle.Render(e.key), e.desc)
		}
	}
	b.WriteString("\n\npress any key to close")
	return m.center(components.HelpBoxStyle.Render(b.String()))
}
