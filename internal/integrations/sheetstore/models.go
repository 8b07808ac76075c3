package sheetstore

// appointmentRecord is one row of the appointments sheet. Field names follow
// the spreadsheet endpoint's JSON contract.
type appointmentRecord struct {
	ID              string `json:"id"`
	ServiceID       string `json:"serviceId"`
	StylistID       string `json:"stylistId"`
	Date            string `json:"date"`
	Time            string `json:"time"`
	DurationMinutes int    `json:"durationMinutes"`
	UserName        string `json:"userName"`
}

// leaveRecord is one row of the leaves sheet. An empty stylistId marks a
// shop-wide closure.
type leaveRecord struct {
	StylistID string `json:"stylistId"`
	Date      string `json:"date"`
}

// createRequest is the POST body that appends an appointment row.
type createRequest struct {
	Action string            `json:"action"`
	Data   appointmentRecord `json:"data"`
}

// cancelRequest is the POST body that removes an appointment row.
type cancelRequest struct {
	Action string `json:"action"`
	ID     string `json:"id"`
}

// mutationResponse is the endpoint's answer to create and cancel posts.
type mutationResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}
