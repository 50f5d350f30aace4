package set_day_schedule

import (
	"github.com/m04kA/essenza-booking/internal/service/schedule/models"
)

// SetDayScheduleRequest тело запроса: либо явный список times,
// либо диапазон from/to с шагом intervalMinutes
type SetDayScheduleRequest struct {
	Times           []string `json:"times,omitempty"`
	From            string   `json:"from,omitempty"`
	To              string   `json:"to,omitempty"`
	IntervalMinutes *int     `json:"intervalMinutes,omitempty"`
}

// HasExplicitTimes true, если передан список times (даже пустой)
func (r *SetDayScheduleRequest) HasExplicitTimes() bool {
	return r.Times != nil
}

// ToWorkingHours конвертирует диапазон в модель сервиса
func (r *SetDayScheduleRequest) ToWorkingHours() models.WorkingHoursRequest {
	return models.WorkingHoursRequest{
		From:            r.From,
		To:              r.To,
		IntervalMinutes: r.IntervalMinutes,
	}
}
