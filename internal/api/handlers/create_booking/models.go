package create_booking

import (
	"time"

	"github.com/m04kA/essenza-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/essenza-booking/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP модель запроса на создание бронирования
type CreateBookingRequest struct {
	DayKey      string  `json:"dayKey"` // "2025-06-10"
	Time        string  `json:"time"`   // "09:30"
	ServiceID   string  `json:"serviceId"`
	ClientName  string  `json:"clientName"`
	ClientPhone string  `json:"clientPhone"`
	ClientEmail *string `json:"clientEmail,omitempty"`
	Note        *string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(autoConfirm bool) *createBooking.Request {
	return &createBooking.Request{
		DayKey:      r.DayKey,
		Time:        r.Time,
		ServiceID:   r.ServiceID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Note:        r.Note,
		AutoConfirm: autoConfirm,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP-модель бронирования
func FromUseCaseResponse(resp *createBooking.Response) *models.BookingResponse {
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
