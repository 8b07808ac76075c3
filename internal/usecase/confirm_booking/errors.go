package confirm_booking

import "errors"

var (
	// ErrSessionNotFound is returned when the session does not exist or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrWrongStep is returned when the session is not at the confirmation step
	ErrWrongStep = errors.New("session is not at the confirmation step")

	// ErrConfirmInFlight is returned when a confirm for this session is
	// already running
	ErrConfirmInFlight = errors.New("confirmation already in progress")

	// ErrSlotTaken is returned when the chosen slot was booked away between
	// selection and confirmation
	ErrSlotTaken = errors.New("slot no longer available")

	// ErrStoreUnavailable is returned when the appointment store cannot be
	// reached; the client may retry the confirm as-is
	ErrStoreUnavailable = errors.New("appointment store unavailable")

	// ErrServiceNotFound is returned when the session's service vanished from
	// the catalog
	ErrServiceNotFound = errors.New("service not found")

	// ErrInternal is returned on internal use case errors
	ErrInternal = errors.New("usecase: internal error")
)
