package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

// NoSlot means the column has no selected card or no drop marker
const NoSlot = -1

// columnOverhead is the border plus the header and the two indicator lines
const columnOverhead = 5

// ColumnProps describes one column on the board
type ColumnProps struct {
	Label string
	// Total counts every member; Cards holds only those matching the search
	Total    int
	Cards    []*models.Athlete
	Filtered bool
	Pinned   bool

	Selected     bool
	SelectedCard int

	// DropSlot places the insertion marker before Cards[DropSlot], or after
	// the last card when it equals len(Cards)
	DropTarget bool
	DropSlot   int
	Dragging   types.AthleteID

	Compact      bool
	Height       int
	ScrollOffset int
}

// VisibleCards returns how many cards fit in a column of the given height
func VisibleCards(height int, compact bool) int {
	per := CardHeight
	if compact {
		per = CompactCardHeight
	}
	// one line is reserved for the drop marker
	return max((height-columnOverhead-1)/per, 1)
}

// RenderColumn renders a complete column with its title and cards
//
// Layout:
//
//	{Label} ({count})
//	▲ (if scrolled down)
//	{Card 1}
//	{Card 2}
//	...
//	▼ (if more cards below)
func RenderColumn(props ColumnProps) string {
	var b strings.Builder
	b.WriteString(renderColumnHeader(props))
	b.WriteString("\n")

	if len(props.Cards) == 0 {
		if props.DropTarget {
			b.WriteString(renderDropLine())
		}
		b.WriteString(EmptyStyle.Render(emptyText(props)))
		return columnStyle(props).Height(props.Height).Render(b.String())
	}

	visible := VisibleCards(props.Height, props.Compact)
	offset := min(max(props.ScrollOffset, 0), max(len(props.Cards)-visible, 0))
	end := min(offset+visible, len(props.Cards))

	b.WriteString(renderScrollIndicator(offset > 0, "▲ more above"))
	for i := offset; i < end; i++ {
		if props.DropTarget && props.DropSlot == i {
			b.WriteString(renderDropLine())
		}
		a := props.Cards[i]
		b.WriteString(RenderCard(CardProps{
			Athlete:  a,
			Selected: props.Selected && props.SelectedCard == i,
			Dragging: a.ID == props.Dragging,
			Compact:  props.Compact,
		}))
		b.WriteString("\n")
	}
	if props.DropTarget && props.DropSlot >= len(props.Cards) {
		b.WriteString(renderDropLine())
	}
	b.WriteString(renderScrollIndicator(end < len(props.Cards), "▼ more below"))

	return columnStyle(props).Height(props.Height).Render(strings.TrimRight(b.String(), "\n"))
}

func columnStyle(props ColumnProps) lipgloss.Style {
	switch {
	case props.DropTarget:
		return DropColumnStyle
	case props.Selected:
		return SelectedColumnStyle
	default:
		return ColumnStyle
	}
}

func renderColumnHeader(props ColumnProps) string {
	count := fmt.Sprintf("%d", props.Total)
	if props.Filtered {
		count = fmt.Sprintf("%d/%d", len(props.Cards), props.Total)
	}
	header := fmt.Sprintf("%s (%s)", props.Label, count)
	if props.Pinned {
		header = "◆ " + header
	}
	return TitleStyle.Render(truncate(header, ColumnContentWidth))
}

func renderScrollIndicator(show bool, text string) string {
	if !show {
		return "\n"
	}
	return IndicatorStyle.Render(text) + "\n"
}

func renderDropLine() string {
	return DropLineStyle.Render("▸ drop here") + "\n"
}

func emptyText(props ColumnProps) string {
	if props.Filtered && props.Total > 0 {
		return "No matches"
	}
	return "No athletes"
}
