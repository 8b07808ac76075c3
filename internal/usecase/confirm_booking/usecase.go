// Package confirm_booking commits a session's selections as an appointment.
// It re-checks the slot against fresh store data, resolves the "any stylist"
// selector, writes the appointment, and moves the session to its terminal
// step. A slot lost in the meantime routes the session back to time
// selection; an unreachable store leaves it at confirmation for a retry.
package confirm_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/session"
	"github.com/justforyou-nail/booking-service/pkg/ptr"
)

// UseCase confirms a booking session.
type UseCase struct {
	sessions SessionStore
	store    AppointmentStore
	catalog  Catalog
	engine   AvailabilityEngine
	newID    func() string
	logger   Logger
}

// NewUseCase creates the use case.
func NewUseCase(
	sessions SessionStore,
	store AppointmentStore,
	catalog Catalog,
	engine AvailabilityEngine,
	logger Logger,
) *UseCase {
	return &UseCase{
		sessions: sessions,
		store:    store,
		catalog:  catalog,
		engine:   engine,
		newID:    uuid.NewString,
		logger:   logger,
	}
}

// Execute runs the confirm round-trip for one session.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// The latch is taken inside the store's atomic update; two concurrent
	// confirms for the same session cannot both pass BeginConfirm.
	sess, err := uc.sessions.Update(ctx, req.SessionID, func(s *session.Session) error {
		return s.BeginConfirm()
	})
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionNotFound):
			uc.logger.Warn("ConfirmBooking: session %s not found", req.SessionID)
			return nil, ErrSessionNotFound
		case errors.Is(err, session.ErrConfirmInFlight):
			uc.logger.Warn("ConfirmBooking: session %s already confirming", req.SessionID)
			return nil, ErrConfirmInFlight
		case errors.Is(err, session.ErrWrongStep):
			uc.logger.Warn("ConfirmBooking: session %s not at confirmation", req.SessionID)
			return nil, ErrWrongStep
		default:
			uc.logger.Error("ConfirmBooking: failed to latch session %s: %v", req.SessionID, err)
			return nil, fmt.Errorf("%w: failed to latch session: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ConfirmBooking: session=%s, service=%s, stylist=%s, date=%s, time=%s",
		sess.ID, sess.ServiceID, sess.StylistID, sess.Date, sess.Time)

	svc, ok := uc.catalog.ServiceByID(sess.ServiceID)
	if !ok {
		uc.logger.Error("ConfirmBooking: service %s vanished from catalog", sess.ServiceID)
		uc.releaseLatch(ctx, sess)
		return nil, ErrServiceNotFound
	}

	appointments := uc.fetchAppointments(ctx, sess.Date)
	leaves := uc.fetchLeaves(ctx, sess.Date)

	// Last advisory check against fresh data. The store itself accepts any
	// row, so this is the only gate against a lost race.
	bookable, err := uc.engine.IsSlotBookable(svc, sess.Date, sess.StylistID, sess.Time, appointments, leaves)
	if err != nil {
		uc.logger.Error("ConfirmBooking: availability check failed: %v", err)
		uc.releaseLatch(ctx, sess)
		return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
	}
	if !bookable {
		uc.logger.Warn("ConfirmBooking: slot %s %s lost before confirm for session %s",
			sess.Date, sess.Time, sess.ID)
		return nil, uc.failSlot(ctx, sess)
	}

	stylistID := sess.StylistID
	if stylistID == domain.StylistAny {
		stylistID = uc.engine.AssignStylist(svc, sess.Date, sess.Time, appointments, leaves)
		uc.logger.Info("ConfirmBooking: assigned stylist %s for session %s", stylistID, sess.ID)
	}

	appt := &domain.Appointment{
		ID:              uc.newID(),
		ServiceID:       svc.ID,
		StylistID:       stylistID,
		Date:            sess.Date,
		StartTime:       sess.Time,
		DurationMinutes: svc.DurationMinutes,
		UserName:        sess.UserName,
	}

	created, err := uc.store.CreateAppointment(ctx, appt)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentRejected) {
			uc.logger.Warn("ConfirmBooking: store rejected appointment for session %s: %v", sess.ID, err)
			return nil, uc.failSlot(ctx, sess)
		}
		uc.logger.Error("ConfirmBooking: store unreachable for session %s: %v", sess.ID, err)
		uc.releaseLatch(ctx, sess)
		return nil, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	sess.CompleteConfirm(created.ID)
	if err := uc.sessions.Put(ctx, sess); err != nil {
		// The appointment exists; losing the session update only costs the
		// success screen state.
		uc.logger.Error("ConfirmBooking: failed to persist completed session %s: %v", sess.ID, err)
	}

	uc.logger.Info("ConfirmBooking: appointment %s recorded for session %s", created.ID, sess.ID)
	return &Response{Session: sess, Appointment: created}, nil
}

// failSlot routes the session back to time selection and reports the lost
// slot.
func (uc *UseCase) failSlot(ctx context.Context, sess *session.Session) error {
	sess.FailConfirm()
	if err := uc.sessions.Put(ctx, sess); err != nil {
		uc.logger.Error("ConfirmBooking: failed to persist session %s after lost slot: %v", sess.ID, err)
	}
	return ErrSlotTaken
}

// releaseLatch unlatches the session without moving it, so the client can
// retry the confirm.
func (uc *UseCase) releaseLatch(ctx context.Context, sess *session.Session) {
	sess.AbortConfirm()
	if err := uc.sessions.Put(ctx, sess); err != nil {
		uc.logger.Error("ConfirmBooking: failed to release confirm latch for session %s: %v", sess.ID, err)
	}
}

// fetchAppointments loads the date's appointments, degrading to an empty set
// when the store is unreachable. The create call is the authority either way.
func (uc *UseCase) fetchAppointments(ctx context.Context, date string) []domain.Appointment {
	records, err := uc.store.ListAppointments(ctx, domain.AppointmentFilter{Date: ptr.Ptr(date)})
	if err != nil {
		uc.logger.Warn("ConfirmBooking: appointment fetch failed, assuming none: %v", err)
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
		uc.logger.Warn("ConfirmBooking: leave fetch failed, assuming none: %v", err)
		return []domain.Leave{}
	}
	return leaves
}
