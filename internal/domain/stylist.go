package domain

// StylistAny is the "no preference" pseudo-selector. It is never a real
// stylist id and never appears on a persisted appointment.
const StylistAny = "any"

// Stylist is an immutable roster entry. Roster order is the declared order in
// the catalog file and is the tie-break order for automatic assignment.
type Stylist struct {
	ID       string
	Name     string
	Image    string
	Greeting string
}
