package create_booking

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var validate = validator.New()

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	return nil
}

// validateDate проверяет, что дата подходит для бронирования
func validateDate(bookingDate, now time.Time, maxAdvanceBookingDays int) error {
	if domain.DateInPast(bookingDate, now) {
		return ErrInvalidDate
	}

	// Если maxAdvanceBookingDays = 0, нет ограничений на дату
	if maxAdvanceBookingDays == 0 {
		return nil
	}

	maxDate := domain.StartOfDay(now).AddDate(0, 0, maxAdvanceBookingDays)
	if domain.StartOfDay(bookingDate).After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceBookingDays)
	}

	return nil
}

// validateSlotAlignment проверяет, что время начала лежит на сетке слотов
// внутри рабочего окна
func validateSlotAlignment(startTime types.TimeString, hours domain.WorkingHours) error {
	if startTime.IsBefore(hours.Start) || !startTime.IsBefore(hours.End) {
		return fmt.Errorf("%w: start time %s is outside working hours %s-%s",
			ErrInvalidTimeSlot, startTime, hours.Start, hours.End)
	}

	startMinutes, err := startTime.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}
	windowStartMinutes, err := hours.Start.Minutes()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	if (startMinutes-windowStartMinutes)%domain.SlotStepMinutes != 0 {
		return fmt.Errorf("%w: start time %s is not aligned to the %d-minute grid",
			ErrInvalidTimeSlot, startTime, domain.SlotStepMinutes)
	}

	return nil
}

// validateNotice проверяет, что бронирование не нарушает minNoticeHours.
// Для дат, отличных от сегодняшней, проверка не нужна.
func validateNotice(bookingDate time.Time, startTime types.TimeString, now time.Time, minNoticeHours int) error {
	if !domain.SameDay(bookingDate, now) {
		return nil
	}

	slotStart, err := startTime.OnDate(bookingDate)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTimeSlot, err)
	}

	threshold := now.Add(time.Duration(minNoticeHours) * time.Hour)
	if !slotStart.After(threshold) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minNoticeHours)
	}

	return nil
}
