// Package session models the booking widget's in-progress selection as a
// strict linear state machine, plus the stores that hold sessions between
// requests.
package session

import (
	"time"

	"github.com/justforyou-nail/booking-service/internal/domain"
	"github.com/justforyou-nail/booking-service/pkg/types"
)

// Step is one screen of the booking flow. Steps advance strictly in order;
// there is no skipping and no branching.
type Step int

const (
	StepChoosingService Step = iota + 1
	StepChoosingStylist
	StepChoosingDate
	StepChoosingTime
	StepConfirming
	StepCompleted // terminal; only a full reset leaves it
)

func (s Step) String() string {
	switch s {
	case StepChoosingService:
		return "choosing_service"
	case StepChoosingStylist:
		return "choosing_stylist"
	case StepChoosingDate:
		return "choosing_date"
	case StepChoosingTime:
		return "choosing_time"
	case StepConfirming:
		return "confirming"
	case StepCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// Session is one client's in-progress booking. All mutation is sequential,
// driven by that client's requests; the stores hand out copies.
type Session struct {
	ID       string `json:"id"`
	Step     Step   `json:"step"`
	UserName string `json:"userName"`

	ServiceID string           `json:"serviceId"`
	StylistID string           `json:"stylistId"` // StylistAny until a preference is chosen
	Date      string           `json:"date"`
	Time      types.TimeString `json:"time"`

	// ConfirmInFlight blocks a second confirm while one is running.
	ConfirmInFlight bool   `json:"confirmInFlight"`
	AppointmentID   string `json:"appointmentId"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// New creates a session at the first step.
func New(id, userName string, now time.Time) *Session {
	return &Session{
		ID:        id,
		Step:      StepChoosingService,
		UserName:  userName,
		StylistID: domain.StylistAny,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SelectService records the service and advances to stylist selection.
func (s *Session) SelectService(serviceID string) error {
	if s.Step != StepChoosingService {
		return ErrWrongStep
	}
	if serviceID == "" {
		return ErrNoSelection
	}
	s.ServiceID = serviceID
	s.Step = StepChoosingStylist
	return nil
}

// SelectStylist records the stylist (or StylistAny) and advances to date
// selection.
func (s *Session) SelectStylist(stylistID string) error {
	if s.Step != StepChoosingStylist {
		return ErrWrongStep
	}
	if stylistID == "" {
		return ErrNoSelection
	}
	s.StylistID = stylistID
	s.Step = StepChoosingDate
	return nil
}

// SelectDate records the date and advances to time selection. Changing the
// date discards any previously chosen time.
func (s *Session) SelectDate(date string) error {
	if s.Step != StepChoosingDate {
		return ErrWrongStep
	}
	if date == "" {
		return ErrNoSelection
	}
	s.Date = date
	s.Time = ""
	s.Step = StepChoosingTime
	return nil
}

// SelectTime records a time the caller has already validated as bookable and
// advances to the confirmation step.
func (s *Session) SelectTime(t types.TimeString) error {
	if s.Step != StepChoosingTime {
		return ErrWrongStep
	}
	if t.IsZero() {
		return ErrNoSelection
	}
	s.Time = t
	s.Step = StepConfirming
	return nil
}

// Back moves one step backward, keeping the selections made so far. The
// machine never goes below the first step, and the terminal step only leaves
// via Reset.
func (s *Session) Back() error {
	switch s.Step {
	case StepChoosingService:
		return nil
	case StepCompleted:
		return ErrSessionCompleted
	default:
		if s.ConfirmInFlight {
			return ErrConfirmInFlight
		}
		s.Step--
		return nil
	}
}

// Reset clears every selection and returns to the first step. This is the
// only exit from StepCompleted.
func (s *Session) Reset() error {
	if s.ConfirmInFlight {
		return ErrConfirmInFlight
	}
	s.Step = StepChoosingService
	s.ServiceID = ""
	s.StylistID = domain.StylistAny
	s.Date = ""
	s.Time = ""
	s.AppointmentID = ""
	return nil
}

// BeginConfirm latches the session for the confirm round-trip. A second
// confirm while one is in flight is rejected, never double-submitted.
func (s *Session) BeginConfirm() error {
	if s.Step != StepConfirming {
		return ErrWrongStep
	}
	if s.ConfirmInFlight {
		return ErrConfirmInFlight
	}
	s.ConfirmInFlight = true
	return nil
}

// CompleteConfirm releases the latch after a successful create and moves the
// session to the terminal step.
func (s *Session) CompleteConfirm(appointmentID string) {
	s.ConfirmInFlight = false
	s.AppointmentID = appointmentID
	s.Step = StepCompleted
}

// FailConfirm releases the latch after a lost slot race and routes the
// session back to time selection so the client must pick again.
func (s *Session) FailConfirm() {
	s.ConfirmInFlight = false
	s.Time = ""
	s.Step = StepChoosingTime
}

// AbortConfirm releases the latch without changing step, used when the store
// was unreachable and the client may simply retry the confirm.
func (s *Session) AbortConfirm() {
	s.ConfirmInFlight = false
}
