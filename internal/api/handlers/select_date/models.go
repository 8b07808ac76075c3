package select_date

// SelectDateRequest HTTP request model
type SelectDateRequest struct {
	Date string `json:"date"` // "2024-06-01"
}
