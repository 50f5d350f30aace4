package confirm_booking

import (
	"time"

	"github.com/m04kA/essenza-booking/internal/service/bookings/models"
	confirmBooking "github.com/m04kA/essenza-booking/internal/usecase/confirm_booking"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель бронирования
func FromUseCaseResponse(resp *confirmBooking.Response) *models.BookingResponse {
	return &models.BookingResponse{
		ID:          resp.ID,
		DayKey:      resp.DayKey.String(),
		Time:        resp.Time.String(),
		ServiceID:   resp.ServiceID,
		ClientName:  resp.ClientName,
		ClientPhone: resp.ClientPhone,
		ClientEmail: resp.ClientEmail,
		Note:        resp.Note,
		Status:      resp.Status,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
