package select_date

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	SelectDate(ctx context.Context, id, date string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
