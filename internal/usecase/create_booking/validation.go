package create_booking

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/types"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// normalizeRequest обрезает пробелы; пустые необязательные поля становятся nil
func normalizeRequest(req *Request) {
	req.DayKey = strings.TrimSpace(req.DayKey)
	req.Time = strings.TrimSpace(req.Time)
	req.ServiceID = strings.TrimSpace(req.ServiceID)
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.ClientPhone = strings.TrimSpace(req.ClientPhone)
	req.ClientEmail = trimOptional(req.ClientEmail)
	req.Note = trimOptional(req.Note)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// validateRequest валидирует входные данные и возвращает слот бронирования
func validateRequest(req *Request) (domain.SlotKey, error) {
	if err := validate.Struct(req); err != nil {
		return domain.SlotKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	dayKey, err := types.ParseDayKey(req.DayKey)
	if err != nil {
		return domain.SlotKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	label, err := types.NewTimeLabelFromString(req.Time)
	if err != nil {
		return domain.SlotKey{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return domain.SlotKey{DayKey: dayKey, Time: label}, nil
}
