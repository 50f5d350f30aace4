package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDayKey = "некорректный формат дня, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{dayKey}/free
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayKey := mux.Vars(r)["dayKey"]

	result, err := h.useCase.FreeTimes(r.Context(), dayKey)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/{dayKey}/free - Invalid day key: day=%s", dayKey)
			handlers.RespondBadRequest(w, msgInvalidDayKey)

		default:
			h.logger.Error("GET /slots/{dayKey}/free - Failed to get free times: day=%s, error=%v", dayKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{dayKey}/free - Free times retrieved: day=%s, count=%d", dayKey, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
