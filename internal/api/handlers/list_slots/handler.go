package list_slots

import (
	"net/http"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
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

// Handle GET /api/v1/slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.ListSchedules(r.Context())
	if err != nil {
		h.logger.Error("GET /slots - Failed to list schedules: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /slots - Schedules retrieved: days=%d", len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, result)
}
