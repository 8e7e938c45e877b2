package state

import "github.com/thenoetrevino/plantel/internal/types"

// Mode represents the current interaction mode of the board screen.
type Mode int

const (
	NormalMode Mode = iota // Default navigation mode
	DragMode               // Carrying a card with the keyboard
	SearchMode             // Typing a search query (/)
	HelpMode               // Displaying help screen
)

func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "NORMAL"
	case DragMode:
		return "DRAG"
	case SearchMode:
		return "SEARCH"
	case HelpMode:
		return "HELP"
	default:
		return "UNKNOWN"
	}
}

// ColumnWidth is the horizontal space one column takes on screen:
// 32 content + 2 padding + 2 border + 2 spacing
const ColumnWidth = 38

// UIState manages user interface state for the board screen.
// Selection indexes refer to the arranged, filtered view the user sees.
type UIState struct {
	selectedColumn int
	selectedCard   int

	// hoverColumn and hoverSlot locate the drop cursor while dragging.
	// A slot equal to the card count means the end of the column.
	hoverColumn int
	hoverSlot   int

	width  int
	height int
	mode   Mode

	// viewportOffset is the index of the first visible column
	viewportOffset int
	// viewportSize is how many columns fit on screen
	viewportSize int

	// cardScrollOffsets holds the first visible card of each column
	cardScrollOffsets map[types.ProgramID]int
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{
		mode:              NormalMode,
		viewportSize:      1,
		cardScrollOffsets: make(map[types.ProgramID]int),
	}
}

func (s *UIState) SelectedColumn() int {
	return s.selectedColumn
}

func (s *UIState) SetSelectedColumn(index int) {
	s.selectedColumn = index
}

func (s *UIState) SelectedCard() int {
	return s.selectedCard
}

func (s *UIState) SetSelectedCard(index int) {
	s.selectedCard = index
}

// Hover returns the drop cursor
func (s *UIState) Hover() (column, slot int) {
	return s.hoverColumn, s.hoverSlot
}

// SetHover moves the drop cursor
func (s *UIState) SetHover(column, slot int) {
	s.hoverColumn = column
	s.hoverSlot = slot
}

func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width and recalculates how many columns fit
func (s *UIState) SetWidth(width int) {
	s.width = width
	s.calculateViewportSize()
}

func (s *UIState) Height() int {
	return s.height
}

func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the rows left for columns after the header and
// status bar.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // title + gap line
	const statusBarHeight = 2 // status bar + notification line
	return max(s.height-headerHeight-statusBarHeight, 5)
}

func (s *UIState) Mode() Mode {
	return s.mode
}

func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}

func (s *UIState) ViewportOffset() int {
	return s.viewportOffset
}

func (s *UIState) SetViewportOffset(offset int) {
	s.viewportOffset = offset
}

func (s *UIState) ViewportSize() int {
	return s.viewportSize
}

func (s *UIState) calculateViewportSize() {
	if s.width == 0 {
		s.viewportSize = 1
		return
	}

	const reservedWidth = 4 // margins and scroll indicators
	s.viewportSize = max(1, (s.width-reservedWidth)/ColumnWidth)
}

// EnsureColumnVisible scrolls the viewport so column is on screen
func (s *UIState) EnsureColumnVisible(column int) {
	if column < s.viewportOffset {
		s.viewportOffset = column
	}
	if column >= s.viewportOffset+s.viewportSize {
		s.viewportOffset = column - s.viewportSize + 1
	}
}

// ClampSelection keeps the selection inside a board of columnsLen columns,
// where cardsIn reports the card count of a column.
func (s *UIState) ClampSelection(columnsLen int, cardsIn func(int) int) {
	if columnsLen == 0 {
		s.selectedColumn, s.selectedCard, s.viewportOffset = 0, 0, 0
		return
	}
	s.selectedColumn = min(max(s.selectedColumn, 0), columnsLen-1)
	cards := cardsIn(s.selectedColumn)
	s.selectedCard = min(max(s.selectedCard, 0), max(cards-1, 0))
	if s.viewportOffset+s.viewportSize > columnsLen {
		s.viewportOffset = max(0, columnsLen-s.viewportSize)
	}
	s.EnsureColumnVisible(s.selectedColumn)
}

// CardScrollOffset returns the first visible card of a column
func (s *UIState) CardScrollOffset(column types.ProgramID) int {
	return s.cardScrollOffsets[column]
}

// EnsureCardVisible scrolls a column so index is within its visible window
func (s *UIState) EnsureCardVisible(column types.ProgramID, index, visibleCount int) {
	offset := s.cardScrollOffsets[column]
	if index < offset {
		offset = index
	}
	if index >= offset+visibleCount {
		offset = index - visibleCount + 1
	}
	s.cardScrollOffsets[column] = max(0, offset)
}

// ResetSelection moves the cursor back to the first card of the first column
func (s *UIState) ResetSelection() {
	s.selectedColumn = 0
	s.selectedCard = 0
	s.viewportOffset = 0
	clear(s.cardScrollOffsets)
}
