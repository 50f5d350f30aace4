package get_available_slots

import (
	getAvailableSlots "github.com/m04kA/essenza-booking/internal/usecase/get_available_slots"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// FreeTimesResponse HTTP модель свободного времени дня
type FreeTimesResponse struct {
	DayKey string   `json:"dayKey"`
	Times  []string `json:"times"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *getAvailableSlots.FreeTimesResponse) *FreeTimesResponse {
	return &FreeTimesResponse{
		DayKey: resp.DayKey.String(),
		Times:  types.ToStrings(resp.Times),
	}
}
