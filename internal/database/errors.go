package database

import (
	"errors"

	"github.com/thenoetrevino/plantel/internal/models"
)

var (
	// ErrNotFound is returned when a row does not exist
	ErrNotFound = models.ErrNotFound

	// ErrInUse is returned when deleting a record other records still reference
	ErrInUse = errors.New("record is referenced by other records")

	// ErrSlotTaken is returned when an appointment overlaps another one in the same room
	ErrSlotTaken = errors.New("consulting room is already booked for that time")
)
