package select_date

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
	msgInvalidDate        = "日期格式錯誤或已過期，請使用 YYYY-MM-DD"
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

// Handle POST /api/v1/sessions/{sessionId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectDate(r.Context(), sessionID, req.Date)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/date - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrInvalidDate):
			h.logger.Warn("POST /sessions/{id}/date - Invalid date: id=%s, date=%s", sessionID, req.Date)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/date - Wrong step: id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /sessions/{id}/date - Session completed: id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionCompleted)

		case errors.Is(err, sessions.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/date - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/date - Invalid input: id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions/{id}/date - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/date - Date selected: id=%s, date=%s", sessionID, req.Date)
	handlers.RespondJSON(w, http.StatusOK, session)
}
