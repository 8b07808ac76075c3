package confirm_booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/internal/session"
	confirmBooking "github.com/justforyou-nail/booking-service/internal/usecase/confirm_booking"
)

type stubUseCase struct {
	resp *confirmBooking.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *confirmBooking.Request) (*confirmBooking.Response, error) {
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func doRequest(uc ConfirmBookingUseCase) *httptest.ResponseRecorder {
	handler := NewHandler(uc, noopLogger{})

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/sessions/{sessionId}/confirm", handler.Handle).Methods(http.MethodPost)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/sessions/sess-1/confirm", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestConfirmCreated(t *testing.T) {
	sess := session.New("sess-1", "林小姐", time.Now())
	sess.Step = session.StepCompleted
	sess.AppointmentID = "appt-1"

	uc := &stubUseCase{
		resp: &confirmBooking.Response{
			Session: sess,
			Appointment: &domain.Appointment{
				ID:              "appt-1",
				ServiceID:       "h1",
				StylistID:       "s1",
				Date:            "2024-06-01",
				StartTime:       "14:00",
				DurationMinutes: 60,
				UserName:        "林小姐",
			},
		},
	}

	recorder := doRequest(uc)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var body ConfirmBookingResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	assert.Equal(t, "appt-1", body.Appointment.ID)
	assert.Equal(t, "14:00", body.Appointment.Time)
	assert.Equal(t, "completed", body.Session.Step)
}

func TestConfirmErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"session missing", confirmBooking.ErrSessionNotFound, http.StatusNotFound},
		{"wrong step", confirmBooking.ErrWrongStep, http.StatusConflict},
		{"already confirming", confirmBooking.ErrConfirmInFlight, http.StatusConflict},
		{"slot taken", confirmBooking.ErrSlotTaken, http.StatusConflict},
		{"store down", confirmBooking.ErrStoreUnavailable, http.StatusServiceUnavailable},
		{"internal", confirmBooking.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doRequest(&stubUseCase{err: tt.err})
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
