package start_session

import (
	"net/http"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
	"github.com/justforyou-nail/booking-service/internal/service/sessions/models"
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

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	req := &models.StartSessionRequest{
		LineAccessToken: r.Header.Get("X-Line-Access-Token"),
	}

	session, err := h.service.Start(r.Context(), req)
	if err != nil {
		h.logger.Error("POST /sessions - Failed to start session: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /sessions - Session started: id=%s", session.ID)
	handlers.RespondJSON(w, http.StatusCreated, session)
}
