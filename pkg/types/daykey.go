package types

import (
	"errors"
	"fmt"
	"time"
)

// DayKeyFormat формат ключа календарного дня
const DayKeyFormat = "2006-01-02"

// ErrInvalidDayKey возвращается, если строка не является датой в формате YYYY-MM-DD
var ErrInvalidDayKey = errors.New("invalid day key format")

// DayKey каноническое представление календарного дня (YYYY-MM-DD, локальное время)
// Два момента времени, попадающие на один локальный день, дают одинаковый DayKey
type DayKey string

// NewDayKey нормализует время к локальному календарному дню
func NewDayKey(t time.Time) DayKey {
	return DayKey(t.In(time.Local).Format(DayKeyFormat))
}

// ParseDayKey парсит строку и проверяет, что она уже в канонической форме
func ParseDayKey(s string) (DayKey, error) {
	key := DayKey(s)
	if err := key.Validate(); err != nil {
		return "", err
	}
	return key, nil
}

// Validate проверяет формат и существование даты (2025-02-30 отклоняется)
func (d DayKey) Validate() error {
	parsed, err := time.ParseInLocation(DayKeyFormat, string(d), time.Local)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDayKey, string(d))
	}
	if parsed.Format(DayKeyFormat) != string(d) {
		return fmt.Errorf("%w: %q is not canonical", ErrInvalidDayKey, string(d))
	}
	return nil
}

// Time возвращает полночь дня в локальной зоне
func (d DayKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation(DayKeyFormat, string(d), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDayKey, string(d))
	}
	return t, nil
}

// IsZero возвращает true для пустого значения
func (d DayKey) IsZero() bool {
	return d == ""
}

// IsBefore возвращает true, если день d строго раньше other
func (d DayKey) IsBefore(other DayKey) bool {
	return d < other
}

// String реализует fmt.Stringer
func (d DayKey) String() string {
	return string(d)
}
