package schedule

import "errors"

var (
	// ErrInvalidInput возвращается при некорректном дне, времени или интервале
	ErrInvalidInput = errors.New("schedule: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule: internal error")
)
