package get_available_slots

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	Get(ctx context.Context, dayKey types.DayKey) (*domain.DaySchedule, error)
	List(ctx context.Context) ([]*domain.DaySchedule, error)
}

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListConfirmedSlots возвращает слоты с подтвержденными бронированиями (dayKey nil - все дни)
	ListConfirmedSlots(ctx context.Context, dayKey *types.DayKey) ([]domain.SlotKey, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
