package set_day_schedule

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	"github.com/m04kA/essenza-booking/internal/service/schedule"
	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidSchedule    = "некорректное расписание дня"
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

// Handle PUT /api/v1/admin/slots/{dayKey}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dayKey := mux.Vars(r)["dayKey"]

	var req SetDayScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/slots/{dayKey} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	var (
		result *models.DayScheduleResponse
		err    error
	)
	if req.HasExplicitTimes() {
		result, err = h.service.SetDaySchedule(r.Context(), dayKey, req.Times)
	} else {
		result, err = h.service.SetWorkingHours(r.Context(), dayKey, req.ToWorkingHours())
	}
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/slots/{dayKey} - Invalid schedule: day=%s, error=%v", dayKey, err)
			handlers.RespondBadRequest(w, msgInvalidSchedule)

		default:
			h.logger.Error("PUT /admin/slots/{dayKey} - Failed to save schedule: day=%s, error=%v", dayKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/slots/{dayKey} - Schedule saved: day=%s, times=%d", dayKey, len(result.Times))
	handlers.RespondJSON(w, http.StatusOK, result)
}
