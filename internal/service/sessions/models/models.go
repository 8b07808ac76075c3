// Package models holds the session service's request and response shapes.
package models

import "github.com/justforyou-nail/booking-service/internal/session"

// StartSessionRequest opens a new booking session. The LINE access token is
// optional; without it the session runs under the default display name.
type StartSessionRequest struct {
	LineAccessToken string
}

// SessionResponse is the session as the widget sees it.
type SessionResponse struct {
	ID            string `json:"id"`
	Step          string `json:"step"`
	UserName      string `json:"userName"`
	ServiceID     string `json:"serviceId,omitempty"`
	StylistID     string `json:"stylistId,omitempty"`
	Date          string `json:"date,omitempty"`
	Time          string `json:"time,omitempty"`
	AppointmentID string `json:"appointmentId,omitempty"`
}

// FromSession converts a domain session to the response shape.
func FromSession(s *session.Session) *SessionResponse {
	return &SessionResponse{
		ID:            s.ID,
		Step:          s.Step.String(),
		UserName:      s.UserName,
		ServiceID:     s.ServiceID,
		StylistID:     s.StylistID,
		Date:          s.Date,
		Time:          s.Time.String(),
		AppointmentID: s.AppointmentID,
	}
}
