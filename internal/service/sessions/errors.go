package sessions

import "errors"

var (
	// ErrSessionNotFound is returned when the session does not exist or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrServiceNotFound is returned when the service id is not in the catalog
	ErrServiceNotFound = errors.New("service not found")

	// ErrStylistNotFound is returned when the stylist id is not in the roster
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrInvalidDate is returned for malformed or past dates
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrSlotUnavailable is returned when the chosen time cannot be booked
	ErrSlotUnavailable = errors.New("slot not available")

	// ErrWrongStep is returned when the operation does not fit the session's
	// current step
	ErrWrongStep = errors.New("operation does not match current step")

	// ErrConfirmInFlight is returned while a confirmation is running
	ErrConfirmInFlight = errors.New("confirmation in progress")

	// ErrSessionCompleted is returned when a completed session receives
	// anything but a reset
	ErrSessionCompleted = errors.New("session already completed")

	// ErrInvalidInput is returned for incomplete requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal service errors
	ErrInternal = errors.New("service: internal error")
)
