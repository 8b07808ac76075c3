// Package sessions drives the booking widget's step flow: it creates
// sessions, applies each selection in order, and walks back or resets on
// request. The confirm round-trip itself lives in the confirm_booking use
// case.
package sessions

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
	"github.com/justforyou-nail/booking-service/internal/session"
	"github.com/justforyou-nail/booking-service/pkg/ptr"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// Service manages booking sessions.
type Service struct {
	sessions        SessionStore
	store           AppointmentStore
	catalog         Catalog
	engine          AvailabilityEngine
	lineClient      LineProfileClient // nil when the LINE integration is off
	defaultUserName string
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewService creates the session service. lineClient may be nil.
func NewService(
	sessions SessionStore,
	store AppointmentStore,
	catalog Catalog,
	engine AvailabilityEngine,
	lineClient LineProfileClient,
	defaultUserName string,
	logger Logger,
) *Service {
	return &Service{
		sessions:        sessions,
		store:           store,
		catalog:         catalog,
		engine:          engine,
		lineClient:      lineClient,
		defaultUserName: defaultUserName,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
	}
}

// Start opens a new session at the service-selection step. The visitor's
// LINE display name is used when resolvable, the configured default
// otherwise.
func (s *Service) Start(ctx context.Context, req *models.StartSessionRequest) (*models.SessionResponse, error) {
	userName := s.resolveUserName(ctx, req.LineAccessToken)

	sess := session.New(s.newID(), userName, s.timeProvider.Now())
	if err := s.sessions.Put(ctx, sess); err != nil {
		s.logger.Error("Start: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("Start: session %s opened for %s", sess.ID, userName)
	return models.FromSession(sess), nil
}

// Get returns the session state.
func (s *Service) Get(ctx context.Context, id string) (*models.SessionResponse, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.FromSession(sess), nil
}

// SelectService records the chosen service and advances the session.
func (s *Service) SelectService(ctx context.Context, id, serviceID string) (*models.SessionResponse, error) {
	if _, ok := s.catalog.ServiceByID(serviceID); !ok {
		s.logger.Warn("SelectService: service %s not found", serviceID)
		return nil, ErrServiceNotFound
	}

	return s.mutate(ctx, id, func(sess *session.Session) error {
		return sess.SelectService(serviceID)
	})
}

// SelectStylist records the chosen stylist, or the "no preference" selector,
// and advances the session.
func (s *Service) SelectStylist(ctx context.Context, id, stylistID string) (*models.SessionResponse, error) {
	if stylistID != domain.StylistAny {
		if _, ok := s.catalog.StylistByID(stylistID); !ok {
			s.logger.Warn("SelectStylist: stylist %s not found", stylistID)
			return nil, ErrStylistNotFound
		}
	}

	return s.mutate(ctx, id, func(sess *session.Session) error {
		return sess.SelectStylist(stylistID)
	})
}

// SelectDate records the chosen date and advances the session. Past dates
// are rejected.
func (s *Service) SelectDate(ctx context.Context, id, date string) (*models.SessionResponse, error) {
	if err := s.validateDate(date); err != nil {
		s.logger.Warn("SelectDate: %v (date=%s)", err, date)
		return nil, err
	}

	return s.mutate(ctx, id, func(sess *session.Session) error {
		return sess.SelectDate(date)
	})
}

// SelectTime validates the chosen time against current availability and
// advances the session to confirmation. The verdict is advisory; the confirm
// step re-checks before writing.
func (s *Service) SelectTime(ctx context.Context, id, timeValue string) (*models.SessionResponse, error) {
	start, err := types.NewTimeStringFromString(timeValue)
	if err != nil {
		s.logger.Warn("SelectTime: malformed time %q: %v", timeValue, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if sess.Step == session.StepChoosingTime {
		svc, ok := s.catalog.ServiceByID(sess.ServiceID)
		if !ok {
			s.logger.Error("SelectTime: service %s vanished from catalog", sess.ServiceID)
			return nil, ErrServiceNotFound
		}

		appointments := s.fetchAppointments(ctx, sess.Date)
		leaves := s.fetchLeaves(ctx, sess.Date)

		bookable, err := s.engine.IsSlotBookable(svc, sess.Date, sess.StylistID, start, appointments, leaves)
		if err != nil {
			s.logger.Error("SelectTime: availability check failed: %v", err)
			return nil, fmt.Errorf("%w: availability check: %v", ErrInternal, err)
		}
		if !bookable {
			s.logger.Warn("SelectTime: slot %s %s not bookable for session %s", sess.Date, start, id)
			return nil, ErrSlotUnavailable
		}
	}

	if err := sess.SelectTime(start); err != nil {
		return nil, s.mapSessionError(err)
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		s.logger.Error("SelectTime: failed to store session: %v", err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("SelectTime: session %s moved to %s", sess.ID, sess.Step)
	return models.FromSession(sess), nil
}

// Back moves the session one step backward.
func (s *Service) Back(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.mutate(ctx, id, func(sess *session.Session) error {
		return sess.Back()
	})
}

// Reset clears the session back to the first step.
func (s *Service) Reset(ctx context.Context, id string) (*models.SessionResponse, error) {
	return s.mutate(ctx, id, func(sess *session.Session) error {
		return sess.Reset()
	})
}

// resolveUserName resolves the LINE display name, falling back to the
// configured default when the token is absent or the profile service is
// down.
func (s *Service) resolveUserName(ctx context.Context, accessToken string) string {
	if accessToken == "" || s.lineClient == nil {
		return s.defaultUserName
	}

	profile, err := s.lineClient.GetProfileWithGracefulDegradation(ctx, accessToken)
	if err != nil {
		s.logger.Warn("Start: LINE profile unavailable, using default name: %v", err)
		return s.defaultUserName
	}
	if profile.DisplayName == "" {
		return s.defaultUserName
	}
	return profile.DisplayName
}

// mutate loads the session, applies fn, and stores the result.
func (s *Service) mutate(ctx context.Context, id string, fn func(*session.Session) error) (*models.SessionResponse, error) {
	sess, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := fn(sess); err != nil {
		return nil, s.mapSessionError(err)
	}

	if err := s.sessions.Put(ctx, sess); err != nil {
		s.logger.Error("mutate: failed to store session %s: %v", id, err)
		return nil, fmt.Errorf("%w: failed to store session: %v", ErrInternal, err)
	}

	s.logger.Info("mutate: session %s now at %s", sess.ID, sess.Step)
	return models.FromSession(sess), nil
}

func (s *Service) load(ctx context.Context, id string) (*session.Session, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		if errors.Is(err, session.ErrSessionNotFound) {
			s.logger.Warn("load: session %s not found", id)
			return nil, ErrSessionNotFound
		}
		s.logger.Error("load: session store error: %v", err)
		return nil, fmt.Errorf("%w: failed to load session: %v", ErrInternal, err)
	}
	return sess, nil
}

func (s *Service) mapSessionError(err error) error {
	switch {
	case errors.Is(err, session.ErrWrongStep):
		return ErrWrongStep
	case errors.Is(err, session.ErrNoSelection):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	case errors.Is(err, session.ErrConfirmInFlight):
		return ErrConfirmInFlight
	case errors.Is(err, session.ErrSessionCompleted):
		return ErrSessionCompleted
	default:
		return fmt.Errorf("%w: %v", ErrInternal, err)
	}
}

func (s *Service) validateDate(date string) error {
	d, err := domain.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrInvalidDate
	}
	return nil
}

// fetchAppointments loads the date's appointments, degrading to an empty set
// when the store is unreachable.
func (s *Service) fetchAppointments(ctx context.Context, date string) []domain.Appointment {
	records, err := s.store.ListAppointments(ctx, domain.AppointmentFilter{Date: ptr.Ptr(date)})
	if err != nil {
		s.logger.Warn("fetchAppointments: store unreachable, assuming none: %v", err)
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
func (s *Service) fetchLeaves(ctx context.Context, date string) []domain.Leave {
	leaves, err := s.store.ListLeaves(ctx, date)
	if err != nil {
		s.logger.Warn("fetchLeaves: store unreachable, assuming none: %v", err)
		return []domain.Leave{}
	}
	return leaves
}
