package appointments

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justforyou-nail/booking-service/internal/catalog"
	"github.com/justforyou-nail/booking-service/internal/domain"
	storageAppt "github.com/justforyou-nail/booking-service/internal/infra/storage/appointment"
	"github.com/justforyou-nail/booking-service/internal/service/appointments/models"
	"github.com/justforyou-nail/booking-service/pkg/ptr"
)

type stubStore struct {
	appointments []*domain.Appointment
	listErr      error
	cancelErr    error
	cancelled    []string
}

func (s *stubStore) ListAppointments(context.Context, domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.appointments, nil
}

func (s *stubStore) CancelAppointment(_ context.Context, id string) error {
	if s.cancelErr != nil {
		return s.cancelErr
	}
	s.cancelled = append(s.cancelled, id)
	return nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T, store *stubStore) *Service {
	t.Helper()

	cat, err := catalog.Load("testdata/catalog.toml")
	require.NoError(t, err)

	return NewService(store, cat, noopLogger{})
}

func TestListResolvesNames(t *testing.T) {
	store := &stubStore{
		appointments: []*domain.Appointment{
			{ID: "a1", ServiceID: "h1", StylistID: "s1", Date: "2024-06-01", StartTime: "10:00", DurationMinutes: 60, UserName: "林小姐"},
		},
	}
	svc := newService(t, store)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)

	require.Equal(t, 1, resp.Total)
	got := resp.Appointments[0]
	assert.Equal(t, "單色 / 跳色", got.ServiceName)
	assert.Equal(t, "虹", got.StylistName)
	assert.Equal(t, "10:00", got.Time)
}

func TestListUnknownIdsFallBack(t *testing.T) {
	store := &stubStore{
		appointments: []*domain.Appointment{
			{ID: "a1", ServiceID: "gone", StylistID: "left", Date: "2024-06-01", StartTime: "10:00"},
		},
	}
	svc := newService(t, store)

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{UserName: ptr.Ptr("林小姐")})
	require.NoError(t, err)

	assert.Equal(t, "gone", resp.Appointments[0].ServiceName)
	assert.Equal(t, "left", resp.Appointments[0].StylistName)
}

func TestListStoreDownDegradesToEmpty(t *testing.T) {
	svc := newService(t, &stubStore{listErr: errors.New("store unreachable")})

	resp, err := svc.List(context.Background(), &models.ListAppointmentsRequest{})
	require.NoError(t, err)
	assert.Empty(t, resp.Appointments)
}

func TestCancel(t *testing.T) {
	store := &stubStore{}
	svc := newService(t, store)

	require.NoError(t, svc.Cancel(context.Background(), "a1"))
	assert.Equal(t, []string{"a1"}, store.cancelled)
}

func TestCancelNotFound(t *testing.T) {
	svc := newService(t, &stubStore{
		cancelErr: fmt.Errorf("%w: no row", storageAppt.ErrAppointmentNotFound),
	})

	err := svc.Cancel(context.Background(), "a404")
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestCancelEmptyID(t *testing.T) {
	svc := newService(t, &stubStore{})

	err := svc.Cancel(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCancelStoreError(t *testing.T) {
	svc := newService(t, &stubStore{cancelErr: errors.New("connection refused")})

	err := svc.Cancel(context.Background(), "a1")
	assert.ErrorIs(t, err, ErrInternal)
}
