package get_free_counts

import (
	"errors"
	"net/http"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/essenza-booking/pkg/ptr"
)

const (
	msgInvalidFrom = "некорректный параметр from, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetFreeCountsUseCase
	logger  Logger
}

func NewHandler(useCase GetFreeCountsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: from (опционально, YYYY-MM-DD) - дни раньше from не учитываются
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var from *string
	if s := r.URL.Query().Get("from"); s != "" {
		from = ptr.Ptr(s)
	}

	result, err := h.useCase.FreeCountByDay(r.Context(), from)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid from: from=%s", ptr.Value(from))
			handlers.RespondBadRequest(w, msgInvalidFrom)

		default:
			h.logger.Error("GET /availability - Failed to count free slots: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Free counts retrieved: days=%d", len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
