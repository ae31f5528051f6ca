package repository

import "errors"

// Store errors shared by all repositories. Handlers translate these into
// typed API error codes; anything else is treated as a store outage.
var (
	ErrNotFound      = errors.New("record not found")
	ErrAlreadyExists = errors.New("record already exists")
	// ErrAlreadyMarked is returned when an attendance batch contains a
	// student who already has a record for that date. The whole batch is
	// rolled back.
	ErrAlreadyMarked = errors.New("attendance already marked for this date")
)
