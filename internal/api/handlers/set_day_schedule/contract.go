package set_day_schedule

import (
	"context"

	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
)

type ScheduleService interface {
	SetDaySchedule(ctx context.Context, dayKey string, times []string) (*models.DayScheduleResponse, error)
	SetWorkingHours(ctx context.Context, dayKey string, req models.WorkingHoursRequest) (*models.DayScheduleResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
