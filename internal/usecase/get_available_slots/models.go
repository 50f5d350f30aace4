package get_available_slots

import "github.com/m04kA/essenza-booking/pkg/types"

// FreeTimesResponse свободное время одного дня в порядке расписания
type FreeTimesResponse struct {
	DayKey types.DayKey
	Times  []types.TimeLabel
}

// FreeCountResponse количество свободных слотов по дням
// Дни без свободных слотов не включаются
type FreeCountResponse struct {
	Days map[types.DayKey]int
}
