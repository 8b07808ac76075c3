package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/justforyou-nail/booking-service/internal/usecase/get_available_slots"
)

type stubUseCase struct {
	gotReq *getAvailableSlots.Request
	resp   *getAvailableSlots.Response
	err    error
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestSlotsResponse(t *testing.T) {
	uc := &stubUseCase{
		resp: &getAvailableSlots.Response{
			Date:      "2024-06-01",
			ServiceID: "h1",
			StylistID: "any",
			Slots: []getAvailableSlots.Slot{
				{Time: "10:00", Bookable: true},
				{Time: "10:30", Bookable: false},
			},
		},
	}
	handler := NewHandler(uc, noopLogger{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots?serviceId=h1&stylistId=any&date=2024-06-01", nil)
	recorder := httptest.NewRecorder()
	handler.Handle(recorder, req)

	require.Equal(t, http.StatusOK, recorder.Code)
	require.NotNil(t, uc.gotReq)
	assert.Equal(t, "h1", uc.gotReq.ServiceID)
	assert.Equal(t, "any", uc.gotReq.StylistID)
	assert.Equal(t, "2024-06-01", uc.gotReq.Date)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "10:00", body.Slots[0].Time)
	assert.True(t, body.Slots[0].Bookable)
	assert.False(t, body.Slots[1].Bookable)
}

func TestSlotsErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing params", getAvailableSlots.ErrInvalidInput, http.StatusBadRequest},
		{"unknown service", getAvailableSlots.ErrServiceNotFound, http.StatusNotFound},
		{"unknown stylist", getAvailableSlots.ErrStylistNotFound, http.StatusNotFound},
		{"bad date", getAvailableSlots.ErrInvalidDate, http.StatusBadRequest},
		{"internal", getAvailableSlots.ErrInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewHandler(&stubUseCase{err: tt.err}, noopLogger{})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/available-slots", nil)
			recorder := httptest.NewRecorder()
			handler.Handle(recorder, req)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
