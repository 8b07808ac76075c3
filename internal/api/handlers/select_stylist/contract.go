package select_stylist

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	SelectStylist(ctx context.Context, id, stylistID string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
