package confirm_booking

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/session"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// SessionStore holds the booking sessions. Update must apply its callback
// atomically; the confirm latch depends on it.
type SessionStore interface {
	Update(ctx context.Context, id string, fn func(s *session.Session) error) (*session.Session, error)
	Put(ctx context.Context, s *session.Session) error
}

// AppointmentStore is the store the confirmed appointment is written to.
type AppointmentStore interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	ListLeaves(ctx context.Context, date string) ([]domain.Leave, error)
	CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
}

// Catalog resolves the session's service id.
type Catalog interface {
	ServiceByID(id string) (domain.Service, bool)
}

// AvailabilityEngine re-checks the chosen slot and resolves the "any
// stylist" selector at commit time.
type AvailabilityEngine interface {
	IsSlotBookable(
		svc domain.Service,
		date string,
		stylistSelector string,
		start types.TimeString,
		appointments []domain.Appointment,
		leaves []domain.Leave,
	) (bool, error)
	AssignStylist(
		svc domain.Service,
		date string,
		start types.TimeString,
		appointments []domain.Appointment,
		leaves []domain.Leave,
	) string
}

// Logger is the logging interface used by the use case.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
