package select_stylist

// SelectStylistRequest HTTP request model. StylistID is a roster id or the
// "any" selector.
type SelectStylistRequest struct {
	StylistID string `json:"stylistId"`
}
