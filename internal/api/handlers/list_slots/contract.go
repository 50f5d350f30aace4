package list_slots

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	ListSchedules(ctx context.Context) (*models.ScheduleListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
