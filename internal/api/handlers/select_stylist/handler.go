package select_stylist

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
	msgStylistNotFound    = "找不到此美甲師"
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

// Handle POST /api/v1/sessions/{sessionId}/stylist
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	var req SelectStylistRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /sessions/{id}/stylist - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	session, err := h.service.SelectStylist(r.Context(), sessionID, req.StylistID)
	if err != nil {
		switch {
		case errors.Is(err, sessions.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/stylist - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, sessions.ErrStylistNotFound):
			h.logger.Warn("POST /sessions/{id}/stylist - Stylist not found: id=%s, stylist=%s", sessionID, req.StylistID)
			handlers.RespondNotFound(w, msgStylistNotFound)

		case errors.Is(err, sessions.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/stylist - Wrong step: id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, sessions.ErrSessionCompleted):
			h.logger.Warn("POST /sessions/{id}/stylist - Session completed: id=%s", sessionID)
			handlers.RespondConflict(w, msgSessionCompleted)

		case errors.Is(err, sessions.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/stylist - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		case errors.Is(err, sessions.ErrInvalidInput):
			h.logger.Warn("POST /sessions/{id}/stylist - Invalid input: id=%s, error=%v", sessionID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /sessions/{id}/stylist - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/stylist - Stylist selected: id=%s, stylist=%s", sessionID, req.StylistID)
	handlers.RespondJSON(w, http.StatusOK, session)
}
