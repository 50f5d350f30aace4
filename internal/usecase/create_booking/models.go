package create_booking

import (
	"time"

	"github.com/m04kA/essenza-booking/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	DayKey      string  `validate:"required"`                // День "2025-06-10"
	Time        string  `validate:"required"`                // Время слота "09:30"
	ServiceID   string  `validate:"required"`                // ID услуги из каталога
	ClientName  string  `validate:"required,max=200"`        // Имя клиента
	ClientPhone string  `validate:"required,max=32"`         // Телефон клиента
	ClientEmail *string `validate:"omitempty,email,max=254"` // Email (опционально)
	Note        *string `validate:"omitempty,max=500"`       // Комментарий (опционально)
	AutoConfirm bool    `validate:"-"`                       // Ручная запись администратором сразу подтверждена
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID          string
	DayKey      types.DayKey
	Time        types.TimeLabel
	ServiceID   string
	ClientName  string
	ClientPhone string
	ClientEmail *string
	Note        *string
	Status      string

	CreatedAt time.Time
	UpdatedAt time.Time
}
