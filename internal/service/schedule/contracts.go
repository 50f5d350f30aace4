package schedule

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// ScheduleRepository интерфейс репозитория рабочих часов
type ScheduleRepository interface {
	Upsert(ctx context.Context, schedule *domain.DaySchedule) error
	Get(ctx context.Context, dayKey types.DayKey) (*domain.DaySchedule, error)
	List(ctx context.Context) ([]*domain.DaySchedule, error)
	Delete(ctx context.Context, dayKey types.DayKey) (bool, error)
}

// BookingRepository интерфейс репозитория бронирований (только чтение занятых слотов)
type BookingRepository interface {
	ListConfirmedSlots(ctx context.Context, dayKey *types.DayKey) ([]domain.SlotKey, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
