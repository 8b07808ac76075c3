package select_service

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

// Handle POST /api/v1/sessions/{sessionId}/service
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/service - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectService(r.Context(), sessionID, req.ServiceID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/service - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/service - Service not found: id=%s, service=%s", sessionID, req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/service - Wrong step: id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /sessions/{id}/service - Session completed: id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionCompleted)

		case errors.Is(err, sessions.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/service - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/service - Invalid input: id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions/{id}/service - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/service - Service selected: id=%s, service=%s", sessionID, req.ServiceID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
