package sheetstore

import (
	"errors"
	"fmt"

	"github.com/justforyou-nail/booking-service/internal/domain"
)

var (
	// ErrRemoteUnavailable is returned when the spreadsheet endpoint cannot be
	// reached or answers with an unexpected status
	ErrRemoteUnavailable = errors.New("sheetstore client: remote unavailable")

	// ErrInvalidResponse is returned when the endpoint answers with a body the
	// client cannot parse
	ErrInvalidResponse = errors.New("sheetstore client: invalid response")

	// ErrCreateRejected is returned when the endpoint refuses to record the
	// appointment, usually because the slot was taken in the meantime. It
	// wraps domain.ErrAppointmentRejected so callers stay backend-agnostic
	ErrCreateRejected = fmt.Errorf("sheetstore client: create rejected: %w", domain.ErrAppointmentRejected)

	// ErrAppointmentNotFound is returned when cancelling an id the sheet does
	// not hold
	ErrAppointmentNotFound = errors.New("sheetstore client: appointment not found")
)
