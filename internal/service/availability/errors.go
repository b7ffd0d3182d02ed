package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных настройках
	ErrInvalidInput = errors.New("invalid availability settings")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
