package confirm_booking

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justforyou-nail/booking-service/internal/availability"
	"github.com/justforyou-nail/booking-service/internal/catalog"
	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/session"
)

type stubStore struct {
	appointments []*domain.Appointment
	leaves       []domain.Leave
	created      []*domain.Appointment
	createErr    error
}

func (s *stubStore) ListAppointments(context.Context, domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func (s *stubStore) ListLeaves(context.Context, string) ([]domain.Leave, error) {
	return s.leaves, nil
}

func (s *stubStore) CreateAppointment(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	appt.CreatedAt = time.Now()
	s.created = append(s.created, appt)
	return appt, nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newUseCase(t *testing.T, store AppointmentStore, sessions session.Store) *UseCase {
	t.Helper()

	cat, err := catalog.Load("testdata/catalog.toml")
	require.NoError(t, err)

	uc := NewUseCase(sessions, store, cat, availability.NewEngine(cat, availability.DefaultSettings()), noopLogger{})
	uc.newID = func() string { return "appt-fixed" }
	return uc
}

func confirmingSession(t *testing.T, sessions session.Store, stylistID string) *session.Session {
	t.Helper()

	sess := session.New("sess-1", "林小姐", time.Now())
	require.NoError(t, sess.SelectService("h1"))
	require.NoError(t, sess.SelectStylist(stylistID))
	require.NoError(t, sess.SelectDate("2024-06-01"))
	require.NoError(t, sess.SelectTime("14:00"))
	require.NoError(t, sessions.Put(context.Background(), sess))
	return sess
}

func TestConfirmSuccess(t *testing.T) {
	store := &stubStore{}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, "s1")

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	assert.Equal(t, "appt-fixed", resp.Appointment.ID)
	assert.Equal(t, "s1", resp.Appointment.StylistID)
	assert.Equal(t, 60, resp.Appointment.DurationMinutes)
	assert.Equal(t, "林小姐", resp.Appointment.UserName)
	assert.Equal(t, session.StepCompleted, resp.Session.Step)
	require.Len(t, store.created, 1)

	// The stored session reflects completion.
	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StepCompleted, stored.Step)
	assert.Equal(t, "appt-fixed", stored.AppointmentID)
}

func TestConfirmAssignsStylistForAny(t *testing.T) {
	store := &stubStore{
		appointments: []*domain.Appointment{
			{ID: "a1", StylistID: "s1", Date: "2024-06-01", StartTime: "14:00", DurationMinutes: 60},
		},
	}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, domain.StylistAny)

	resp, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	require.NoError(t, err)

	// s1 is busy at 14:00, so the booking lands on s2.
	assert.Equal(t, "s2", resp.Appointment.StylistID)
}

func TestConfirmSlotLost(t *testing.T) {
	store := &stubStore{
		appointments: []*domain.Appointment{
			{ID: "a1", StylistID: "s1", Date: "2024-06-01", StartTime: "14:00", DurationMinutes: 60},
		},
	}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, "s1")

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrSlotTaken)
	assert.Empty(t, store.created)

	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StepChoosingTime, stored.Step)
	assert.True(t, stored.Time.IsZero())
	assert.False(t, stored.ConfirmInFlight)
}

func TestConfirmStoreRejects(t *testing.T) {
	store := &stubStore{
		createErr: fmt.Errorf("store: %w", domain.ErrAppointmentRejected),
	}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, "s1")

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrSlotTaken)

	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StepChoosingTime, stored.Step)
}

func TestConfirmStoreUnreachable(t *testing.T) {
	store := &stubStore{
		createErr: errors.New("connection refused"),
	}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, "s1")

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrStoreUnavailable)

	// Session stays at confirmation, unlatched, so the client can retry.
	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StepConfirming, stored.Step)
	assert.False(t, stored.ConfirmInFlight)
	assert.Equal(t, "14:00", stored.Time.String())
}

func TestConfirmWrongStep(t *testing.T) {
	store := &stubStore{}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)

	sess := session.New("sess-1", "林小姐", time.Now())
	require.NoError(t, sessions.Put(context.Background(), sess))

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestConfirmSessionMissing(t *testing.T) {
	uc := newUseCase(t, &stubStore{}, session.NewMemoryStore(time.Hour))

	_, err := uc.Execute(context.Background(), &Request{SessionID: "nope"})
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

// gatedStore blocks inside CreateAppointment until released, holding the
// first confirm open so a second one can be fired at it.
type gatedStore struct {
	stubStore
	entered chan struct{}
	release chan struct{}
}

func (g *gatedStore) CreateAppointment(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	close(g.entered)
	<-g.release
	return g.stubStore.CreateAppointment(ctx, appt)
}

func TestConfirmConcurrentDuplicateRejected(t *testing.T) {
	store := &gatedStore{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	sessions := session.NewMemoryStore(time.Hour)
	uc := newUseCase(t, store, sessions)
	confirmingSession(t, sessions, "s1")

	firstDone := make(chan error, 1)
	go func() {
		_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
		firstDone <- err
	}()

	// The first confirm holds the latch while its create is in flight.
	<-store.entered

	_, err := uc.Execute(context.Background(), &Request{SessionID: "sess-1"})
	assert.ErrorIs(t, err, ErrConfirmInFlight)

	close(store.release)
	require.NoError(t, <-firstDone)

	// Exactly one appointment was written.
	require.Len(t, store.created, 1)
	stored, err := sessions.Get(context.Background(), "sess-1")
	require.NoError(t, err)
	assert.Equal(t, session.StepCompleted, stored.Step)
}
