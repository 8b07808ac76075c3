package get_available_slots

import "github.com/justforyou-nail/booking-service/pkg/types"

// Request asks for the slot grid of one date.
type Request struct {
	ServiceID string // chosen service
	StylistID string // concrete stylist id or domain.StylistAny
	Date      string // YYYY-MM-DD
}

// Response is the annotated slot grid for the requested date.
type Response struct {
	Date      string
	ServiceID string
	StylistID string
	Closed    bool // shop closed, no slots at all
	Slots     []Slot
}

// Slot is one grid time with its booking verdict.
type Slot struct {
	Time     types.TimeString
	Bookable bool
}
