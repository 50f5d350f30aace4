package get_free_counts

import (
	"context"

	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
)

type GetFreeCountsUseCase interface {
	FreeCountByDay(ctx context.Context, from *string) (*getAvailableSlots.FreeCountResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
