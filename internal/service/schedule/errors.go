package schedule

import "errors"

var (
	// ErrNoDateSelected возвращается при выборе слота без выбранной даты
	ErrNoDateSelected = errors.New("no date selected")

	// ErrSlotNotFound возвращается, когда слот не найден в сетке выбранного дня
	ErrSlotNotFound = errors.New("slot not found")

	// ErrSlotNotAvailable возвращается при попытке выбрать недоступный слот
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
