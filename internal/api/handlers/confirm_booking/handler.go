package confirm_booking

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/justforyou-nail/booking-service/internal/api/handlers"
	confirmBooking "github.com/justforyou-nail/booking-service/internal/usecase/confirm_booking"
)

const (
	msgSessionNotFound = "找不到預約流程，請重新開始"
	msgServiceNotFound = "找不到此服務項目"
	msgWrongStep       = "目前步驟無法執行此操作"
	msgConfirmInFlight = "處理中，請稍候..."
	msgSlotTaken       = "預約失敗，該時段可能剛剛被訂走了，請重新選擇時段。"
	msgStoreDown       = "連線失敗，請稍後再試"
)

type Handler struct {
	useCase ConfirmBookingUseCase
	logger  Logger
}

func NewHandler(useCase ConfirmBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions/{sessionId}/confirm
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sessionID := mux.Vars(r)["sessionId"]

	result, err := h.useCase.Execute(r.Context(), &confirmBooking.Request{SessionID: sessionID})
	if err != nil {
		switch {
		case errors.Is(err, confirmBooking.ErrSessionNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Session not found: id=%s", sessionID)
			handlers.RespondNotFound(w, msgSessionNotFound)

		case errors.Is(err, confirmBooking.ErrServiceNotFound):
			h.logger.Warn("POST /sessions/{id}/confirm - Service vanished: id=%s", sessionID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, confirmBooking.ErrWrongStep):
			h.logger.Warn("POST /sessions/{id}/confirm - Wrong step: id=%s", sessionID)
			handlers.RespondConflict(w, msgWrongStep)

		case errors.Is(err, confirmBooking.ErrConfirmInFlight):
			h.logger.Warn("POST /sessions/{id}/confirm - Confirm in flight: id=%s", sessionID)
			handlers.RespondConflict(w, msgConfirmInFlight)

		case errors.Is(err, confirmBooking.ErrSlotTaken):
			h.logger.Warn("POST /sessions/{id}/confirm - Slot taken: id=%s", sessionID)
			handlers.RespondConflict(w, msgSlotTaken)

		case errors.Is(err, confirmBooking.ErrStoreUnavailable):
			h.logger.Error("POST /sessions/{id}/confirm - Store unavailable: id=%s, error=%v", sessionID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgStoreDown)

		default:
			h.logger.Error("POST /sessions/{id}/confirm - Failed: id=%s, error=%v", sessionID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /sessions/{id}/confirm - Booking confirmed: session=%s, appointment=%s",
		sessionID, result.Appointment.ID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
