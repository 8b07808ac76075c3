package session

import "errors"

var (
	// ErrSessionNotFound is returned when the store has no such session
	// (never created, expired, or deleted).
	ErrSessionNotFound = errors.New("session: not found")

	// ErrWrongStep is returned for an operation that does not belong to the
	// session's current step.
	ErrWrongStep = errors.New("session: operation not allowed at this step")

	// ErrNoSelection is returned when a step advance is attempted without the
	// required selection.
	ErrNoSelection = errors.New("session: selection required")

	// ErrConfirmInFlight is returned when a confirm is already running for
	// this session.
	ErrConfirmInFlight = errors.New("session: confirm already in flight")

	// ErrSessionCompleted is returned for step operations on a completed
	// session; only Reset is allowed.
	ErrSessionCompleted = errors.New("session: already completed")

	// ErrStore is returned for storage backend failures.
	ErrStore = errors.New("session: store error")
)
