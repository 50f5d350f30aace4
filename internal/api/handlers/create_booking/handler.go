package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/essenza-booking/internal/api/handlers"
	createBooking "github.com/m04kA/essenza-booking/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные бронирования"
	msgUnknownService     = "услуга не найдена в каталоге"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
)

// Handler создает бронирование
// Публичный маршрут создает pending, административный сразу confirmed
type Handler struct {
	useCase     CreateBookingUseCase
	logger      Logger
	autoConfirm bool
	route       string
}

func NewHandler(useCase CreateBookingUseCase, logger Logger, autoConfirm bool) *Handler {
	route := "POST /bookings"
	if autoConfirm {
		route = "POST /admin/bookings"
	}

	return &Handler{
		useCase:     useCase,
		logger:      logger,
		autoConfirm: autoConfirm,
		route:       route,
	}
}

// Handle POST /api/v1/bookings и POST /api/v1/admin/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", h.route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(h.autoConfirm))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrUnknownService):
			h.logger.Warn("%s - Unknown service: service_id=%s", h.route, req.ServiceID)
			handlers.RespondBadRequest(w, msgUnknownService)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("%s - Invalid input: %v", h.route, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("%s - Slot not available: day=%s, time=%s", h.route, req.DayKey, req.Time)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("%s - Failed to create booking: day=%s, time=%s, error=%v",
				h.route, req.DayKey, req.Time, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("%s - Booking created successfully: booking_id=%s, status=%s", h.route, result.ID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
