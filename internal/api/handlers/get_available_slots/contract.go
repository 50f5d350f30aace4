package get_available_slots

import (
	"context"

	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
)

type GetAvailableSlotsUseCase interface {
	FreeTimes(ctx context.Context, dayKey string) (*getAvailableSlots.FreeTimesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
