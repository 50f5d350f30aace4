package domain

import "errors"

// ErrUnknownStatus возвращается при разборе неизвестного статуса
var ErrUnknownStatus = errors.New("unknown booking status")

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCanceled  BookingStatus = "canceled"
)

// AllStatuses полный список статусов в порядке отображения
var AllStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
	StatusCanceled,
}

// transitions таблица допустимых переходов
// canceled -> canceled допускается: повторная отмена ничего не меняет
var transitions = map[BookingStatus]map[BookingStatus]bool{
	StatusPending: {
		StatusConfirmed: true,
		StatusCanceled:  true,
	},
	StatusConfirmed: {
		StatusCanceled: true,
	},
	StatusCanceled: {
		StatusCanceled: true,
	},
}

// ParseBookingStatus конвертирует строку в BookingStatus с валидацией
func ParseBookingStatus(s string) (BookingStatus, error) {
	status := BookingStatus(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// IsValid returns true for one of the three known statuses
func (s BookingStatus) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransitionTo проверяет переход по таблице
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	return transitions[s][next]
}

// Rank порядок группы в списке администратора
func (s BookingStatus) Rank() int {
	switch s {
	case StatusPending:
		return 0
	case StatusConfirmed:
		return 1
	case StatusCanceled:
		return 2
	default:
		return len(AllStatuses)
	}
}

// String реализует fmt.Stringer
func (s BookingStatus) String() string {
	return string(s)
}
