package models

import (
	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/ptr"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// DayScheduleResponse рабочие часы одного дня
type DayScheduleResponse struct {
	DayKey string   `json:"dayKey"`
	Times  []string `json:"times"`
}

// ScheduleListResponse рабочие часы всех дней: dayKey -> список времени
type ScheduleListResponse struct {
	Slots map[string][]string `json:"slots"`
}

// WorkingHoursRequest параметры генерации рабочих часов
// Незаданные поля заменяются значениями по умолчанию (09:00, 17:00, 30 минут),
// явно переданный intervalMinutes (в том числе 0) сохраняется
type WorkingHoursRequest struct {
	From            string `json:"from"`
	To              string `json:"to"`
	IntervalMinutes *int   `json:"intervalMinutes"`
}

// WithDefaults подставляет значения по умолчанию в незаполненные поля
func (r WorkingHoursRequest) WithDefaults() WorkingHoursRequest {
	if r.From == "" {
		r.From = domain.DefaultWorkingHoursFrom
	}
	if r.To == "" {
		r.To = domain.DefaultWorkingHoursTo
	}
	if r.IntervalMinutes == nil {
		r.IntervalMinutes = ptr.Ptr(domain.DefaultSlotIntervalMinutes)
	}
	return r
}

// FromDomainSchedule конвертирует расписание дня в response
func FromDomainSchedule(s *domain.DaySchedule) *DayScheduleResponse {
	return &DayScheduleResponse{
		DayKey: s.DayKey.String(),
		Times:  types.ToStrings(s.Times),
	}
}

// FromDomainScheduleList конвертирует список расписаний в map dayKey -> times
func FromDomainScheduleList(schedules []*domain.DaySchedule) *ScheduleListResponse {
	slots := make(map[string][]string, len(schedules))
	for _, s := range schedules {
		slots[s.DayKey.String()] = types.ToStrings(s.Times)
	}
	return &ScheduleListResponse{Slots: slots}
}
