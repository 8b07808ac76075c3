package domain

// ServiceCategory is the closed set of catalog categories.
type ServiceCategory string

const (
	CategoryHand    ServiceCategory = "hand"
	CategoryFoot    ServiceCategory = "foot"
	CategoryCare    ServiceCategory = "care"
	CategoryRemoval ServiceCategory = "removal"
	CategoryCombo   ServiceCategory = "combo"
)

// Categories lists all known categories in display order.
var Categories = []ServiceCategory{
	CategoryHand,
	CategoryFoot,
	CategoryCare,
	CategoryRemoval,
	CategoryCombo,
}

// IsValid returns true if the category belongs to the closed set.
func (c ServiceCategory) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Service is an immutable catalog entry. Loaded once at startup, never mutated.
type Service struct {
	ID              string
	Name            string
	Category        ServiceCategory
	PriceTWD        int  // fixed price in TWD; meaningless when QuoteOnSite is set
	QuoteOnSite     bool // price is quoted at the salon instead of listed
	DurationMinutes int
}
