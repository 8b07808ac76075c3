package sessions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justforyou-nail/booking-service/internal/availability"
	"github.com/justforyou-nail/booking-service/internal/catalog"
	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/integrations/lineprofile"
	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
	"github.com/justforyou-nail/booking-service/internal/session"
)

type stubStore struct {
	appointments []*domain.Appointment
	leaves       []domain.Leave
}

func (s *stubStore) ListAppointments(context.Context, domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return s.appointments, nil
}

func (s *stubStore) ListLeaves(context.Context, string) ([]domain.Leave, error) {
	return s.leaves, nil
}

type stubLineClient struct {
	profile *lineprofile.Profile
	err     error
}

func (c *stubLineClient) GetProfileWithGracefulDegradation(context.Context, string) (*lineprofile.Profile, error) {
	return c.profile, c.err
}

type fixedTimeProvider struct{ now time.Time }

func (p *fixedTimeProvider) Now() time.Time { return p.now }

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T, store *stubStore, lineClient LineProfileClient) *Service {
	t.Helper()

	cat, err := catalog.Load("testdata/catalog.toml")
	require.NoError(t, err)

	svc := NewService(
		session.NewMemoryStore(time.Hour),
		store,
		cat,
		availability.NewEngine(cat, availability.DefaultSettings()),
		lineClient,
		"貴賓",
		noopLogger{},
	)
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2024, 5, 30, 9, 0, 0, 0, time.UTC)}
	return svc
}

func startSession(t *testing.T, svc *Service) string {
	t.Helper()
	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{})
	require.NoError(t, err)
	return resp.ID
}

func TestStartWithoutToken(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)

	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{})
	require.NoError(t, err)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "choosing_service", resp.Step)
	assert.Equal(t, "貴賓", resp.UserName)
	assert.Equal(t, domain.StylistAny, resp.StylistID)
}

func TestStartWithLineProfile(t *testing.T) {
	lineClient := &stubLineClient{profile: &lineprofile.Profile{DisplayName: "林小姐"}}
	svc := newService(t, &stubStore{}, lineClient)

	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{LineAccessToken: "token"})
	require.NoError(t, err)
	assert.Equal(t, "林小姐", resp.UserName)
}

func TestStartLineDegraded(t *testing.T) {
	lineClient := &stubLineClient{err: errors.New("degraded")}
	svc := newService(t, &stubStore{}, lineClient)

	resp, err := svc.Start(context.Background(), &models.StartSessionRequest{LineAccessToken: "token"})
	require.NoError(t, err)
	assert.Equal(t, "貴賓", resp.UserName)
}

func TestFullSelectionFlow(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	resp, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)
	assert.Equal(t, "choosing_stylist", resp.Step)

	resp, err = svc.SelectStylist(ctx, id, "s1")
	require.NoError(t, err)
	assert.Equal(t, "choosing_date", resp.Step)

	resp, err = svc.SelectDate(ctx, id, "2024-06-01")
	require.NoError(t, err)
	assert.Equal(t, "choosing_time", resp.Step)

	resp, err = svc.SelectTime(ctx, id, "14:00")
	require.NoError(t, err)
	assert.Equal(t, "confirming", resp.Step)
	assert.Equal(t, "14:00", resp.Time)
}

func TestSelectServiceUnknown(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	id := startSession(t, svc)

	_, err := svc.SelectService(context.Background(), id, "nope")
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestSelectStylistAny(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	_, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)

	resp, err := svc.SelectStylist(ctx, id, domain.StylistAny)
	require.NoError(t, err)
	assert.Equal(t, domain.StylistAny, resp.StylistID)
}

func TestSelectStylistUnknown(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	_, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)

	_, err = svc.SelectStylist(ctx, id, "nope")
	assert.ErrorIs(t, err, ErrStylistNotFound)
}

func TestSelectDatePast(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	_, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)
	_, err = svc.SelectStylist(ctx, id, "s1")
	require.NoError(t, err)

	_, err = svc.SelectDate(ctx, id, "2024-05-29")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.SelectDate(ctx, id, "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestSelectTimeBusySlot(t *testing.T) {
	store := &stubStore{
		appointments: []*domain.Appointment{
			{ID: "a1", StylistID: "s1", Date: "2024-06-01", StartTime: "14:00", DurationMinutes: 60},
		},
	}
	svc := newService(t, store, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	_, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)
	_, err = svc.SelectStylist(ctx, id, "s1")
	require.NoError(t, err)
	_, err = svc.SelectDate(ctx, id, "2024-06-01")
	require.NoError(t, err)

	_, err = svc.SelectTime(ctx, id, "14:00")
	assert.ErrorIs(t, err, ErrSlotUnavailable)

	// The session stays at the time step.
	resp, err := svc.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "choosing_time", resp.Step)
}

func TestSelectTimeWrongStep(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	id := startSession(t, svc)

	_, err := svc.SelectTime(context.Background(), id, "14:00")
	assert.ErrorIs(t, err, ErrWrongStep)
}

func TestBackAndReset(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)
	ctx := context.Background()
	id := startSession(t, svc)

	_, err := svc.SelectService(ctx, id, "h1")
	require.NoError(t, err)

	resp, err := svc.Back(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "choosing_service", resp.Step)

	resp, err = svc.Reset(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "choosing_service", resp.Step)
	assert.Empty(t, resp.ServiceID)
}

func TestGetMissingSession(t *testing.T) {
	svc := newService(t, &stubStore{}, nil)

	_, err := svc.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
