package get_available_slots

import (
	"context"
	"time"

	"github.com/justforyou-nail/booking-service/internal/availability"
	"github.com/justforyou-nail/booking-service/internal/domain"
)

// AppointmentStore is the appointment source the slot list is computed
// against. Either store backend satisfies it.
type AppointmentStore interface {
	ListAppointments(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
	ListLeaves(ctx context.Context, date string) ([]domain.Leave, error)
}

// Catalog resolves service and stylist ids.
type Catalog interface {
	ServiceByID(id string) (domain.Service, bool)
	StylistByID(id string) (domain.Stylist, bool)
}

// SlotEngine generates the annotated slot grid.
type SlotEngine interface {
	SlotList(
		svc domain.Service,
		date string,
		stylistSelector string,
		appointments []domain.Appointment,
		leaves []domain.Leave,
	) (*availability.SlotList, error)
}

// TimeProvider supplies the current time (overridable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger is the logging interface used by the use case.
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
