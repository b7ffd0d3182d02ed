package reschedule_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reschedule_booking: invalid input data")

	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("reschedule_booking: booking not found")

	// ErrCannotReschedule возвращается при попытке перенести отменённое бронирование
	ErrCannotReschedule = errors.New("reschedule_booking: booking cannot be rescheduled")

	// ErrInvalidDate возвращается при некорректной дате переноса
	ErrInvalidDate = errors.New("reschedule_booking: invalid booking date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает горизонт maxAdvanceBookingDays
	ErrDateTooFarInFuture = errors.New("reschedule_booking: date is too far in the future")

	// ErrDayNotAvailable возвращается, когда указанный день не входит в рабочие дни
	ErrDayNotAvailable = errors.New("reschedule_booking: day is not available for booking")

	// ErrInvalidTimeSlot возвращается, когда время слота некорректно
	ErrInvalidTimeSlot = errors.New("reschedule_booking: invalid time slot")

	// ErrTooLateToBook возвращается, когда перенос нарушает minNoticeHours
	ErrTooLateToBook = errors.New("reschedule_booking: too late to book this slot")

	// ErrSlotNotAvailable возвращается, когда новый слот конфликтует с другим бронированием
	ErrSlotNotAvailable = errors.New("reschedule_booking: slot is not available")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("reschedule_booking: internal error")
)
