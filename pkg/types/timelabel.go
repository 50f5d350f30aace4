package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLabelFormat = "15:04"
	minutesPerDay   = 24 * 60
)

var (
	// ErrInvalidTimeLabel возвращается, если строка не является временем в формате HH:MM
	ErrInvalidTimeLabel = errors.New("invalid time label format")

	// ErrTimeOverflow возвращается, если результат арифметики выходит за пределы суток
	ErrTimeOverflow = errors.New("time label out of day bounds")
)

// TimeLabel время суток в формате HH:MM (24 часа, с ведущими нулями)
// Благодаря ведущим нулям лексикографический порядок совпадает с хронологическим
type TimeLabel string

// NewTimeLabel создает TimeLabel из time.Time (берутся только часы и минуты)
func NewTimeLabel(t time.Time) TimeLabel {
	return TimeLabel(t.Format(timeLabelFormat))
}

// NewTimeLabelFromString парсит и валидирует строку вида "09:30"
func NewTimeLabelFromString(s string) (TimeLabel, error) {
	label := TimeLabel(s)
	if err := label.Validate(); err != nil {
		return "", err
	}
	return label, nil
}

// NewTimeLabelFromMinutes создает TimeLabel из количества минут от полуночи
func NewTimeLabelFromMinutes(minutes int) (TimeLabel, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrTimeOverflow, minutes)
	}
	return TimeLabel(fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)), nil
}

// Validate проверяет строгий формат HH:MM
func (t TimeLabel) Validate() error {
	s := string(t)
	if len(s) != len(timeLabelFormat) || s[2] != ':' {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	if _, err := time.Parse(timeLabelFormat, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeLabel, s)
	}
	return nil
}

// IsZero возвращает true для пустого значения
func (t TimeLabel) IsZero() bool {
	return t == ""
}

// Minutes возвращает количество минут от полуночи
func (t TimeLabel) Minutes() (int, error) {
	if err := t.Validate(); err != nil {
		return 0, err
	}
	s := string(t)
	hours := int(s[0]-'0')*10 + int(s[1]-'0')
	minutes := int(s[3]-'0')*10 + int(s[4]-'0')
	return hours*60 + minutes, nil
}

// AddMinutes возвращает новое время, сдвинутое на указанное количество минут
// Переход через полночь считается ошибкой
func (t TimeLabel) AddMinutes(minutes int) (TimeLabel, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeLabelFromMinutes(current + minutes)
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeLabel) IsBefore(other TimeLabel) bool {
	return t < other
}

// IsAfter возвращает true, если t строго позже other
func (t TimeLabel) IsAfter(other TimeLabel) bool {
	return t > other
}

// String реализует fmt.Stringer
func (t TimeLabel) String() string {
	return string(t)
}

// ToStrings конвертирует список TimeLabel в строки
func ToStrings(labels []TimeLabel) []string {
	result := make([]string, len(labels))
	for i, label := range labels {
		result[i] = string(label)
	}
	return result
}

// ParseTimeLabels парсит список строк, останавливаясь на первой некорректной
func ParseTimeLabels(values []string) ([]TimeLabel, error) {
	result := make([]TimeLabel, 0, len(values))
	for _, v := range values {
		label, err := NewTimeLabelFromString(v)
		if err != nil {
			return nil, err
		}
		result = append(result, label)
	}
	return result, nil
}
