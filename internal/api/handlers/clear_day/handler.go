package clear_day

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

// Handle DELETE /api/v1/admin/slots/{dayKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayKey := mux.Vars(r)["dayKey"]

	if err := h.service.ClearDay(r.Context(), dayKey); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /admin/slots/{dayKey} - Invalid day key: day=%s", dayKey)
			handlers.RespondBadRequest(w, msgInvalidDayKey)

		default:
			h.logger.Error("DELETE /admin/slots/{dayKey} - Failed to clear day: day=%s, error=%v", dayKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /admin/slots/{dayKey} - Day cleared: day=%s", dayKey)
	handlers.RespondJSON(w, http.StatusOK, handlers.SuccessResponse{Success: true})
}
