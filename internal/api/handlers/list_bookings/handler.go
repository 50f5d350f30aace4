package list_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	"github.com/m04kA/essenza-booking/internal/service/bookings"
	"github.com/m04kA/essenza-booking/pkg/ptr"
)

const (
	msgInvalidStatus = "некорректный статус, ожидается pending, confirmed или canceled"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/bookings
// Query params: status (опционально: pending, confirmed, canceled)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var status *string
	if s := r.URL.Query().Get("status"); s != "" {
		status = ptr.Ptr(s)
	}

	result, err := h.service.List(r.Context(), status)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /admin/bookings - Invalid status filter: status=%s", ptr.Value(status))
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /admin/bookings - Failed to list bookings: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /admin/bookings - Bookings retrieved successfully: status=%s, count=%d", ptr.Value(status), result.Total)
	handlers.RespondJSON(w, http.StatusOK, result)
}
