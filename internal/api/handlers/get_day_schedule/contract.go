package get_day_schedule

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDaySchedule(ctx context.Context, dayKey string) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
