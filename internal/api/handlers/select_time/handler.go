package select_time

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
	"github.com/justforyou-nail/booking-service/internal/service/sessions"
)

const (
	msgInvalidRequestBody = "請求格式錯誤"
	msgSessionNotFound    = "找不到預約流程，請重新開始"
	msgServiceNotFound    = "找不到此服務項目"
	msgSlotUnavailable    = "該時段已無法預約，請重新選擇時段"
	msgWrongStep          = "目前步驟無法執行此操作"
	msgSessionCompleted   = "此預約流程已完成，請重新開始"
	msgConfirmInFlight    = "處理中，請稍候..."
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

// Handle POST /api/v1/sessions/{sessionId}/time
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectTimeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/time - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectTime(r.Context(), sessionID, req.Time)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/time - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/time - Service vanished: id=%s", sessionID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, sessions.ErrSlotUnavailable):
			h.logger.Warn("POST /sessions/{id}/time - Slot unavailable: id=%s, time=%s", sessionID, req.Time)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/time - Wrong step: id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /sessions/{id}/time - Session completed: id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionCompleted)

		case errors.Is(err, sessions.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/time - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/time - Invalid input: id=%s, time=%s", sessionID, req.Time)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions/{id}/time - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/time - Time selected: id=%s, time=%s", sessionID, req.Time)
	handlers.RespondJSON(w, http.StatusOK, session)
}
