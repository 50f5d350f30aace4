package create_booking

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrUnknownService возвращается, когда услуги нет в каталоге (частный случай ErrInvalidInput)
	ErrUnknownService = fmt.Errorf("%w: unknown service", ErrInvalidInput)

	// ErrSlotNotAvailable возвращается, когда на слот уже есть подтвержденное бронирование
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
