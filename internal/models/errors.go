package models

import "errors"

// Domain-specific errors shared by the client and the development backend
var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrUnknownResource indicates a catalog resource path that is not served
	ErrUnknownResource = errors.New("unknown catalog resource")

	// ErrInvalidStatus indicates an appointment status outside the known set
	ErrInvalidStatus = errors.New("invalid appointment status")
)
