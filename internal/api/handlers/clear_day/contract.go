package clear_day

import "context"

type ScheduleService interface {
	ClearDay(ctx context.Context, dayKey string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
