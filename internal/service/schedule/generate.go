package schedule

import (
	"fmt"

	"github.com/m04kA/essenza-booking/internal/domain"
	"github.com/m04kA/essenza-booking/pkg/types"
)

// GenerateWorkingHours строит расписание дня: от from с шагом interval, строго меньше to
// Чистая функция, ничего не сохраняет
func GenerateWorkingHours(dayKey, from, to string, intervalMinutes int) (*domain.DaySchedule, error) {
	key, err := types.ParseDayKey(dayKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	start, err := types.NewTimeLabelFromString(from)
	if err != nil {
		return nil, fmt.Errorf("%w: from: %v", ErrInvalidInput, err)
	}

	end, err := types.NewTimeLabelFromString(to)
	if err != nil {
		return nil, fmt.Errorf("%w: to: %v", ErrInvalidInput, err)
	}

	if !start.IsBefore(end) {
		return nil, fmt.Errorf("%w: from %s must be before to %s", ErrInvalidInput, start, end)
	}

	if intervalMinutes <= 0 {
		return nil, fmt.Errorf("%w: interval must be positive, got %d", ErrInvalidInput, intervalMinutes)
	}

	startMinutes, _ := start.Minutes()
	endMinutes, _ := end.Minutes()

	times := make([]types.TimeLabel, 0, (endMinutes-startMinutes)/intervalMinutes+1)
	for m := startMinutes; m < endMinutes; m += intervalMinutes {
		label, err := types.NewTimeLabelFromMinutes(m)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		times = append(times, label)
	}

	return &domain.DaySchedule{DayKey: key, Times: times}, nil
}

// normalizeTimes парсит метки времени и убирает повторы, сохраняя первое вхождение
func normalizeTimes(values []string) ([]types.TimeLabel, error) {
	labels, err := types.ParseTimeLabels(values)
	if err != nil {
		return nil, err
	}

	seen := make(map[types.TimeLabel]bool, len(labels))
	result := make([]types.TimeLabel, 0, len(labels))
	for _, label := range labels {
		if seen[label] {
			continue
		}
		seen[label] = true
		result = append(result, label)
	}

	return result, nil
}
