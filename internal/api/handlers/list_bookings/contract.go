package list_bookings

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/service/bookings/models"
)

type BookingService interface {
	List(ctx context.Context, status *string) (*models.BookingListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
