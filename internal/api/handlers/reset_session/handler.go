package reset_session

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
	"github.com/justforyou-nail/booking-service/internal/service/sessions"
)

const (
	msgSessionNotFound = "找不到預約流程，請重新開始"
	msgConfirmInFlight = "處理中，請稍候..."
)

type Handler struct {
	service SessionService
	logger  Logger
}

func NewHandler(service SessionService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	session, err := h.service.Reset(r.Context(), sessionID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/reset - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/reset - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		default:
			h.logger.Error("POST /sessions/{id}/reset - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/reset - Session reset: id=%s", sessionID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
