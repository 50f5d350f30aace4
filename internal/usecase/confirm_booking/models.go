package confirm_booking

import (
	"time"

	"github.com/m04kA/essenza-booking/pkg/types"
)

// Response модель ответа с подтвержденным бронированием
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
