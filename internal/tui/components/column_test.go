package components

import (
	"strings"
	"testing"

	"github.com/thenoetrevino/plantel/internal/models"
	"github.com/thenoetrevino/plantel/internal/types"
)

func athletes(names ...string) []*models.Athlete {
	out := make([]*models.Athlete, 0, len(names))
	for i, n := range names {
		out = append(out, &models.Athlete{ID: types.AthleteID(i + 1), FirstName: n, LastName: "Prueba", Age: 20, Sport: "Natación"})
	}
	return out
}

func TestRenderColumnHeader(t *testing.T) {
	tests := []struct {
		name     string
		props    ColumnProps
		wantText string
	}{
		{
			name:     "empty column",
			props:    ColumnProps{Label: "Unassigned"},
			wantText: "Unassigned (0)",
		},
		{
			name:     "counts every member",
			props:    ColumnProps{Label: "Fuerza", Total: 2, Cards: athletes("Ana", "Bruno")},
			wantText: "Fuerza (2)",
		},
		{
			name:     "filtered shows matches over total",
			props:    ColumnProps{Label: "Fuerza", Total: 5, Cards: athletes("Ana"), Filtered: true},
			wantText: "Fuerza (1/5)",
		},
		{
			name:     "pinned",
			props:    ColumnProps{Label: "Nutrición", Pinned: true},
			wantText: "◆ Nutrición (0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := renderColumnHeader(tt.props)
			if !strings.Contains(result, tt.wantText) {
				t.Errorf("renderColumnHeader() = %q, want to contain %q", result, tt.wantText)
			}
		})
	}
}

func TestRenderScrollIndicator(t *testing.T) {
	result := renderScrollIndicator(true, "▲ more above")
	if !strings.Contains(result, "more above") {
		t.Errorf("renderScrollIndicator(true, ...) = %q, want to contain 'more above'", result)
	}
	if !strings.HasSuffix(result, "\n") {
		t.Errorf("renderScrollIndicator(true, ...) should end with newline")
	}

	if got := renderScrollIndicator(false, "▲ more above"); got != "\n" {
		t.Errorf("renderScrollIndicator(false, ...) = %q, want a bare newline", got)
	}
}

func TestRenderColumn_EmptyStates(t *testing.T) {
	out := RenderColumn(ColumnProps{Label: "Rehabilitación", Height: 20})
	if !strings.Contains(out, "No athletes") {
		t.Errorf("empty column = %q, want 'No athletes'", out)
	}

	out = RenderColumn(ColumnProps{Label: "Rehabilitación", Total: 3, Filtered: true, Height: 20})
	if !strings.Contains(out, "No matches") {
		t.Errorf("filtered empty column = %q, want 'No matches'", out)
	}
}

func TestRenderColumn_DropMarker(t *testing.T) {
	cards := athletes("Ana", "Bruno")

	tests := []struct {
		name   string
		slot   int
		before string
	}{
		{name: "before first card", slot: 0, before: "Ana"},
		{name: "between cards", slot: 1, before: "Bruno"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := RenderColumn(ColumnProps{
				Label: "Fuerza", Total: 2, Cards: cards,
				DropTarget: true, DropSlot: tt.slot, Height: 40,
			})
			marker := strings.Index(out, "drop here")
			card := strings.Index(out, tt.before)
			if marker < 0 || card < 0 || marker > card {
				t.Errorf("drop marker at %d, %q at %d: want marker first", marker, tt.before, card)
			}
		})
	}

	out := RenderColumn(ColumnProps{
		Label: "Fuerza", Total: 2, Cards: cards,
		DropTarget: true, DropSlot: 2, Height: 40,
	})
	if strings.Index(out, "drop here") < strings.Index(out, "Bruno") {
		t.Errorf("end-of-column marker should follow the last card: %q", out)
	}

	out = RenderColumn(ColumnProps{Label: "Fuerza", Total: 2, Cards: cards, DropSlot: NoSlot, Height: 40})
	if strings.Contains(out, "drop here") {
		t.Errorf("column that is not a drop target shows a marker: %q", out)
	}
}

func TestRenderColumn_ScrollIndicators(t *testing.T) {
	cards := athletes("A1", "A2", "A3", "A4", "A5", "A6", "A7", "A8")
	height := columnOverhead + 1 + 3*CardHeight // three comfortable cards

	out := RenderColumn(ColumnProps{Label: "Fuerza", Total: len(cards), Cards: cards, Height: height, ScrollOffset: 2})
	if !strings.Contains(out, "more above") || !strings.Contains(out, "more below") {
		t.Errorf("scrolled column should show both indicators: %q", out)
	}
	if strings.Contains(out, "A1 ") || !strings.Contains(out, "A3") {
		t.Errorf("scrolled column should start at the third card: %q", out)
	}
}

func TestVisibleCards(t *testing.T) {
	if got := VisibleCards(0, false); got != 1 {
		t.Errorf("VisibleCards(0) = %d, want at least 1", got)
	}
	if got := VisibleCards(columnOverhead+1+3*CardHeight, false); got != 3 {
		t.Errorf("VisibleCards comfortable = %d, want 3", got)
	}
	if got := VisibleCards(columnOverhead+1+10, true); got != 10 {
		t.Errorf("VisibleCards compact = %d, want 10", got)
	}
}

func TestRenderCard_Compact(t *testing.T) {
	a := &models.Athlete{ID: 1, FirstName: "Ana", LastName: "Torres", SecondLastName: "Ríos", Age: 17, Sport: "Natación"}

	full := RenderCard(CardProps{Athlete: a})
	if !strings.Contains(full, "Natación") {
		t.Errorf("comfortable card should show details: %q", full)
	}

	compact := RenderCard(CardProps{Athlete: a, Compact: true})
	if strings.Contains(compact, "\n") {
		t.Errorf("compact card should be one line: %q", compact)
	}
	if !strings.Contains(compact, "Ana Torres Ríos") {
		t.Errorf("compact card should show the name: %q", compact)
	}
}
