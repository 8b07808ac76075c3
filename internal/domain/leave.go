package domain

// ShopWideLeave is the empty stylist id on a Leave record meaning the whole
// shop is closed on that date.
const ShopWideLeave = ""

// Leave records a stylist's (or the whole shop's) unavailability on a date.
// Read-only from the booking flow's perspective.
type Leave struct {
	StylistID string // empty = shop-wide closure
	Date      string // "2006-01-02"
}

// IsShopWide returns true if the leave closes the entire shop.
func (l Leave) IsShopWide() bool {
	return l.StylistID == ShopWideLeave
}

// CoversStylist returns true if the leave makes the given stylist unavailable.
func (l Leave) CoversStylist(stylistID string) bool {
	return l.IsShopWide() || l.StylistID == stylistID
}
