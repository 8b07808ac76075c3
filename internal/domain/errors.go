package domain

import "errors"

// ErrAppointmentRejected marks a create the appointment store refused,
// usually because the slot was taken in the meantime. Store backends wrap it
// so callers do not need to know which backend is configured.
var ErrAppointmentRejected = errors.New("appointment rejected by store")
