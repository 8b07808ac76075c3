package get_available_slots

import "errors"

var (
	// ErrServiceNotFound is returned when the service id is not in the catalog
	ErrServiceNotFound = errors.New("service not found")

	// ErrStylistNotFound is returned when the stylist id is not in the roster
	ErrStylistNotFound = errors.New("stylist not found")

	// ErrInvalidDate is returned for malformed or past dates
	ErrInvalidDate = errors.New("invalid booking date")

	// ErrInvalidInput is returned for incomplete requests
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
