package get_available_slots

import (
	"fmt"
	"time"

	"github.com/justforyou-nail/booking-service/internal/domain"
)

// validateRequest checks that the request is complete.
func validateRequest(req *Request) error {
	if req.ServiceID == "" {
		return fmt.Errorf("%w: serviceId is required", ErrInvalidInput)
	}
	if req.StylistID == "" {
		return fmt.Errorf("%w: stylistId is required", ErrInvalidInput)
	}
	if req.Date == "" {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}

// validateDate parses the date and rejects dates before today.
func validateDate(date string, now time.Time) error {
	d, err := domain.ParseDate(date)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if d.Before(today) {
		return ErrInvalidDate
	}
	return nil
}
