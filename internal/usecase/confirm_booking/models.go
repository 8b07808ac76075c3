package confirm_booking

import (
	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/session"
)

// Request confirms the booking held by one session.
type Request struct {
	SessionID string
}

// Response carries the recorded appointment and the completed session.
type Response struct {
	Session     *session.Session
	Appointment *domain.Appointment
}
