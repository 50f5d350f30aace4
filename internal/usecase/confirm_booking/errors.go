package confirm_booking

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("confirm_booking: booking not found")

	// ErrSlotConflict возвращается, когда на слот уже подтверждено другое бронирование
	ErrSlotConflict = errors.New("confirm_booking: slot already has a confirmed booking")

	// ErrInvalidTransition возвращается при попытке подтвердить отмененное бронирование
	ErrInvalidTransition = errors.New("confirm_booking: booking cannot be confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("confirm_booking: internal error")
)
