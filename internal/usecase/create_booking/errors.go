package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате бронирования
	ErrInvalidDate = errors.New("create_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт maxAdvanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_booking: date is too far in the future")

	// ErrDayNotAvailable возвращается, когда указанный день не входит в рабочие дни
	ErrDayNotAvailable = errors.New("create_booking: day is not available for booking")

	// ErrDurationNotAllowed возвращается, когда длительность не входит в список разрешённых
	ErrDurationNotAllowed = errors.New("create_booking: duration is not allowed")

	// ErrInvalidTimeSlot возвращается, когда время слота некорректно (не кратно шагу сетки или вне рабочих часов)
	ErrInvalidTimeSlot = errors.New("create_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда попытка забронировать слот нарушает minNoticeHours
	ErrTooLateToBook = errors.New("create_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда выбранный слот конфликтует с существующим бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
