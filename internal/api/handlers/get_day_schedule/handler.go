package get_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	"github.com/m04kA/essenza-booking/internal/service/schedule"
)

const (
	msgInvalidDayKey = "некорректный формат дня, ожидается YYYY-MM-DD"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/{dayKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayKey := mux.Vars(r)["dayKey"]

	result, err := h.service.GetDaySchedule(r.Context(), dayKey)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /slots/{dayKey} - Invalid day key: day=%s", dayKey)
			handlers.RespondBadRequest(w, msgInvalidDayKey)

		default:
			h.logger.Error("GET /slots/{dayKey} - Failed to get schedule: day=%s, error=%v", dayKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /slots/{dayKey} - Schedule retrieved: day=%s, times=%d", dayKey, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
