package confirm_booking

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	GetByIDForUpdate(ctx context.Context, id string) (*domain.Booking, error)
	ExistsConfirmed(ctx context.Context, slot domain.SlotKey, excludeID string) (bool, error)
	LockSlot(ctx context.Context, slot domain.SlotKey) error
	UpdateStatus(ctx context.Context, id string, status domain.BookingStatus) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// MetricsRecorder бизнес-метрики бронирований
type MetricsRecorder interface {
	IncBookingTransition(status string)
	IncSlotRejection(operation string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
