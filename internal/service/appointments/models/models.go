// Package models holds the appointment service's request and response
// shapes.
package models

// ListAppointmentsRequest filters the appointment list. Both fields are
// optional.
type ListAppointmentsRequest struct {
	Date     *string
	UserName *string
}

// AppointmentResponse is one appointment as the widget shows it, with
// catalog names resolved.
type AppointmentResponse struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	ServiceName     string `json:"serviceName"`
	StylistID       string `json:"stylistId"`
	StylistName     string `json:"stylistName"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	UserName        string `json:"userName"`
}

// AppointmentListResponse is the list wrapper.
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}
