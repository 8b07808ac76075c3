package appointments

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/domain"
)

// AppointmentStore lists and cancels stored appointments. Either store
// backend satisfies it.
type AppointmentStore interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	CancelAppointment(ctx context.Context, id string) error
}

// Catalog resolves ids to display names for the list view.
type Catalog interface {
	ServiceByID(id string) (domain.Service, bool)
	StylistByID(id string) (domain.Stylist, bool)
}

// Logger is the logging interface used by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
