package sessions

import (
	"context"
	"time"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/integrations/lineprofile"
	"github.com/justforyou-nail/booking-service/internal/session"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// SessionStore holds the booking sessions.
type SessionStore interface {
	Get(ctx context.Context, id string) (*session.Session, error)
	Put(ctx context.Context, s *session.Session) error
	Delete(ctx context.Context, id string) error
}

// AppointmentStore supplies the data the time-selection check runs against.
type AppointmentStore interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	ListLeaves(ctx context.Context, date string) ([]domain.Leave, error)
}

// Catalog resolves service and stylist ids.
type Catalog interface {
	ServiceByID(id string) (domain.Service, bool)
	StylistByID(id string) (domain.Stylist, bool)
}

// AvailabilityEngine validates a chosen time before it enters the session.
type AvailabilityEngine interface {
	IsSlotBookable(
		svc domain.Service,
		date string,
		stylistSelector string,
		start types.TimeString,
		appointments []domain.Appointment,
		leaves []domain.Leave,
	) (bool, error)
}

// LineProfileClient resolves the visitor's display name. May be absent.
type LineProfileClient interface {
	GetProfileWithGracefulDegradation(ctx context.Context, accessToken string) (*lineprofile.Profile, error)
}

// TimeProvider supplies the current time (overridable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
