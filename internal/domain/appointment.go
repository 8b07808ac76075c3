package domain

import (
	"time"

	"github.com/justforyou-nail/booking-service/pkg/types"
)

// Appointment is a booked slot. DurationMinutes is copied from the service at
// creation time, so later catalog edits never alter existing appointments.
type Appointment struct {
	ID              string
	ServiceID       string
	StylistID       string // always a real stylist id, never StylistAny
	Date            string // calendar date, "2006-01-02"
	StartTime       types.TimeString
	DurationMinutes int
	UserName        string

	CreatedAt time.Time // set by the Postgres backend; zero for the sheet store
}

// EndTime returns the exclusive end of the appointment interval.
func (a *Appointment) EndTime() (types.TimeString, error) {
	return a.StartTime.AddMinutes(a.DurationMinutes)
}

// AppointmentFilter narrows store listings. Nil fields match everything.
type AppointmentFilter struct {
	Date     *string
	UserName *string
}
