package confirm_booking

import (
	sessionModels "github.com/justforyou-nail/booking-service/internal/service/sessions/models"
	confirmBooking "github.com/justforyou-nail/booking-service/internal/usecase/confirm_booking"
)

// AppointmentResponse is the recorded appointment.
type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	StylistID       string `json:"stylistId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	UserName        string `json:"userName"`
}

// ConfirmBookingResponse HTTP response model
type ConfirmBookingResponse struct {
	Session     *sessionModels.SessionResponse `json:"session"`
	Appointment AppointmentResponse            `json:"appointment"`
}

// FromUseCaseResponse converts the use case response to the HTTP response.
func FromUseCaseResponse(resp *confirmBooking.Response) *ConfirmBookingResponse {
	return &ConfirmBookingResponse{
		Session: sessionModels.FromSession(resp.Session),
		Appointment: AppointmentResponse{
			ID:              resp.Appointment.ID,
			ServiceID:       resp.Appointment.ServiceID,
			StylistID:       resp.Appointment.StylistID,
			Date:            resp.Appointment.Date,
			Time:            resp.Appointment.StartTime.String(),
			DurationMinutes: resp.Appointment.DurationMinutes,
			UserName:        resp.Appointment.UserName,
		},
	}
}
