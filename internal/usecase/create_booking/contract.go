package create_booking

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/essenza-booking/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ExistsConfirmed(ctx context.Context, slot domain.SlotKey, excludeID string) (bool, error)
	LockSlot(ctx context.Context, slot domain.SlotKey) error
}

// ServiceCatalog каталог услуг клиники
type ServiceCatalog interface {
	Has(id string) bool
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

// IDProvider интерфейс генерации ID бронирования (для тестирования)
type IDProvider interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// UUIDProvider генерирует случайные UUID v4
type UUIDProvider struct{}

// NewID возвращает новый UUID
func (p *UUIDProvider) NewID() string {
	return uuid.NewString()
}
