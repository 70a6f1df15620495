package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase and handler layers
var (
	// Catalog errors
	ErrRoomNotFound = errors.New("room not found")

	// Ledger errors
	ErrReservationNotFound = errors.New("reservation not found")
	ErrRoomUnavailable     = errors.New("room is not available for the requested dates")

	// Caller-side validation; the ledger itself never returns this
	ErrValidation = errors.New("validation error")

	// Store unreadable, unwritable or holding a malformed record
	ErrPersistence = errors.New("persistence error")
)
