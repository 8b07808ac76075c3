package get_appointments

import (
	"net/http"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
	"github.com/justforyou-nail/booking-service/internal/service/appointments/models"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments?date=...&userName=...
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &models.ListAppointmentsRequest{}
	if date := query.Get("date"); date != "" {
		req.Date = &date
	}
	if userName := query.Get("userName"); userName != "" {
		req.UserName = &userName
	}

	result, err := h.service.List(r.Context(), req)
	if err != nil {
		h.logger.Error("GET /appointments - Failed: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
