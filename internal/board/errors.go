package board

import "errors"

var (
	// ErrDragInProgress is returned by Start while another drag is active
	ErrDragInProgress = errors.New("a drag is already in progress")

	// ErrNotDragging is returned when a hover or drop arrives with no active drag
	ErrNotDragging = errors.New("no drag in progress")

	// ErrNotLoaded is returned when a move is staged before the board is ready
	ErrNotLoaded = errors.New("board is not loaded")

	// ErrUnknownAthlete is returned for a move of an athlete missing from the registry
	ErrUnknownAthlete = errors.New("unknown athlete")

	// ErrUnknownProgram is returned for a move into a column the board does not have
	ErrUnknownProgram = errors.New("unknown program")

	// ErrMoveRejected wraps the backend error of a move that was rolled back
	ErrMoveRejected = errors.New("move rejected by backend")
)
