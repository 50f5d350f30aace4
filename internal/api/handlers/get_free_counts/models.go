package get_free_counts

import (
	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
)

// FreeCountsResponse HTTP модель: dayKey -> количество свободных слотов
type FreeCountsResponse struct {
	Days map[string]int `json:"days"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.FreeCountResponse) *FreeCountsResponse {
	days := make(map[string]int, len(resp.Days))
	for day, count := range resp.Days {
		days[day.String()] = count
	}
	return &FreeCountsResponse{Days: days}
}
