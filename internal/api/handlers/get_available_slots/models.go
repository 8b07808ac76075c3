package get_available_slots

import (
	getAvailableSlots "github.com/justforyou-nail/booking-service/internal/usecase/get_available_slots"
)

// SlotResponse is one grid time with its verdict.
type SlotResponse struct {
	Time     string `json:"time"`
	Bookable bool   `json:"bookable"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date      string         `json:"date"`
	ServiceID string         `json:"serviceId"`
	StylistID string         `json:"stylistId"`
	Closed    bool           `json:"closed"`
	Slots     []SlotResponse `json:"slots"`
}

// FromUseCaseResponse converts the use case response to the HTTP response.
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		slots = append(slots, SlotResponse{Time: s.Time.String(), Bookable: s.Bookable})
	}

	return &AvailableSlotsResponse{
		Date:      resp.Date,
		ServiceID: resp.ServiceID,
		StylistID: resp.StylistID,
		Closed:    resp.Closed,
		Slots:     slots,
	}
}
