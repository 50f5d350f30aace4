package domain

import "github.com/m04kA/essenza-booking/pkg/types"

// DaySchedule рабочие часы одного дня: упорядоченный список времен, доступных для записи
// Отсутствие записи означает, что в этот день слотов нет
type DaySchedule struct {
	DayKey types.DayKey
	Times  []types.TimeLabel
}

// IsEmpty returns true if the day has no offered times
func (s *DaySchedule) IsEmpty() bool {
	return s == nil || len(s.Times) == 0
}

// Contains проверяет, предлагается ли время в этот день
func (s *DaySchedule) Contains(t types.TimeLabel) bool {
	if s == nil {
		return false
	}
	for _, label := range s.Times {
		if label == t {
			return true
		}
	}
	return false
}

// FreeTimes возвращает времена расписания без занятых слотов, сохраняя порядок расписания
func (s *DaySchedule) FreeTimes(taken map[types.TimeLabel]bool) []types.TimeLabel {
	free := make([]types.TimeLabel, 0)
	if s == nil {
		return free
	}
	for _, label := range s.Times {
		if !taken[label] {
			free = append(free, label)
		}
	}
	return free
}
