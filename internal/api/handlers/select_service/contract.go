package select_service

import (
	"context"

	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
)

type SessionService interface {
	SelectService(ctx context.Context, id, serviceID string) (*models.SessionResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
