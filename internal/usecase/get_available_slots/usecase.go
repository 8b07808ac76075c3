// Package get_available_slots computes the annotated slot grid for one date:
// every grid time with a bookable verdict, or a closed marker when the shop
// does not open at all.
package get_available_slots

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/pkg/ptr"
)

// UseCase computes the slot grid for the booking widget's time step.
type UseCase struct {
	store        AppointmentStore
	catalog      Catalog
	engine       SlotEngine
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(store AppointmentStore, catalog Catalog, engine SlotEngine, logger Logger) *UseCase {
	return &UseCase{
		store:        store,
		catalog:      catalog,
		engine:       engine,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute computes the slot grid. Store failures degrade to an empty
// appointment set rather than an error: the widget keeps working and shows
// optimistic availability, which the confirm step re-checks anyway.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: service=%s, stylist=%s, date=%s",
		req.ServiceID, req.StylistID, req.Date)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	svc, ok := uc.catalog.ServiceByID(req.ServiceID)
	if !ok {
		uc.logger.Warn("GetAvailableSlots: service %s not found", req.ServiceID)
		return nil, ErrServiceNotFound
	}

	if req.StylistID != domain.StylistAny {
		if _, ok := uc.catalog.StylistByID(req.StylistID); !ok {
			uc.logger.Warn("GetAvailableSlots: stylist %s not found", req.StylistID)
			return nil, ErrStylistNotFound
		}
	}

	appointments := uc.fetchAppointments(ctx, req.Date)
	leaves := uc.fetchLeaves(ctx, req.Date)

	list, err := uc.engine.SlotList(svc, req.Date, req.StylistID, appointments, leaves)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: slot generation failed: %v", err)
		return nil, err
	}

	slots := make([]Slot, 0, len(list.Slots))
	for _, s := range list.Slots {
		slots = append(slots, Slot{Time: s.Time, Bookable: s.Bookable})
	}

	uc.logger.Info("GetAvailableSlots: %d slots for date=%s (closed=%t)",
		len(slots), req.Date, list.Closed)

	return &Response{
		Date:      req.Date,
		ServiceID: req.ServiceID,
		StylistID: req.StylistID,
		Closed:    list.Closed,
		Slots:     slots,
	}, nil
}

// fetchAppointments loads the date's appointments, degrading to an empty set
// when the store is unreachable.
func (uc *UseCase) fetchAppointments(ctx context.Context, date string) []domain.Appointment {
	records, err := uc.store.ListAppointments(ctx, domain.AppointmentFilter{Date: ptr.Ptr(date)})
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: appointment fetch failed, assuming none: %v", err)
		return []domain.Appointment{}
	}

	appointments := make([]domain.Appointment, 0, len(records))
	for _, r := range records {
		appointments = append(appointments, *r)
	}
	return appointments
}

// fetchLeaves loads the date's leaves, degrading to an empty set when the
// store is unreachable.
func (uc *UseCase) fetchLeaves(ctx context.Context, date string) []domain.Leave {
	leaves, err := uc.store.ListLeaves(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: leave fetch failed, assuming none: %v", err)
		return []domain.Leave{}
	}
	return leaves
}
