package reschedule_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
)

// UseCase use case для переноса бронирования на новую дату и время
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	schedule     ScheduleState
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookings BookingRepository,
	settingsRepo SettingsRepository,
	schedule ScheduleState,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookings,
		settingsRepo: settingsRepo,
		schedule:     schedule,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case переноса бронирования.
// Новый интервал проверяется по тем же правилам, что и при создании;
// собственное бронирование при проверке конфликтов не учитывается.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: id=%s, date=%s, time=%s",
		req.BookingID, req.Date.Format(domain.DateFormat), req.StartTime)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем бронирование
	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("RescheduleBooking: booking id=%s not found", req.BookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("RescheduleBooking: failed to get booking id=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}

	// 4. Проверяем, что бронирование можно перенести
	if !booking.CanBeRescheduled() {
		uc.logger.Warn("RescheduleBooking: booking id=%s has status %s", booking.ID, booking.Status)
		return nil, ErrCannotReschedule
	}

	// 5. Получаем настройки доступности
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("RescheduleBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 6. Валидация новой даты
	if err := validateDate(req.Date, now, settings.MaxAdvanceBookingDays); err != nil {
		uc.logger.Warn("RescheduleBooking: date validation failed: %v", err)
		return nil, err
	}

	if !settings.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Warn("RescheduleBooking: %s is not a working day", req.Date.Format(domain.DateFormat))
		return nil, ErrDayNotAvailable
	}

	// 7. Проверяем, что время начала лежит на сетке слотов
	if err := validateSlotAlignment(req.StartTime, settings.WorkingHours); err != nil {
		uc.logger.Warn("RescheduleBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем минимальный интервал до начала встречи
	if err := validateNotice(req.Date, req.StartTime, now, settings.MinNoticeHours); err != nil {
		uc.logger.Warn("RescheduleBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 9. Вычисляем новый интервал: длительность сохраняется
	endTime, err := req.StartTime.AddMinutes(booking.DurationMinutes)
	if err != nil {
		uc.logger.Warn("RescheduleBooking: meeting would cross midnight: %v", err)
		return nil, fmt.Errorf("%w: meeting does not fit into the day", ErrInvalidTimeSlot)
	}

	oldDate := booking.BookingDate

	// Переменная для хранения результата
	var result *domain.Booking

	// 10. Проверка конфликтов и перенос выполняются атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Получаем активные бронирования на новую дату
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, domain.BookingsFilter{
			Date: &req.Date,
		})
		if err != nil {
			uc.logger.Error("RescheduleBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 10.2. Проверяем конфликты, исключая само переносимое бронирование
		for _, existing := range bookings {
			if existing.ID == booking.ID {
				continue
			}

			conflict, err := domain.OverlapsPadded(
				req.StartTime, endTime,
				existing.StartTime, existing.EndTime,
				settings.BufferTimeMinutes,
			)
			if err != nil {
				uc.logger.Error("RescheduleBooking: failed to check conflict with booking id=%s: %v", existing.ID, err)
				return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
			}
			if conflict {
				uc.logger.Warn("RescheduleBooking: slot %s-%s conflicts with booking id=%s",
					req.StartTime, endTime, existing.ID)
				uc.metrics.BookingConflictRejected()
				return ErrSlotNotAvailable
			}
		}

		// 10.3. Переносим бронирование
		moved, err := uc.bookingRepo.Reschedule(txCtx, booking.ID, req.Date, req.StartTime, endTime)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			uc.logger.Error("RescheduleBooking: failed to reschedule booking id=%s: %v", booking.ID, err)
			return fmt.Errorf("%w: failed to reschedule booking: %v", ErrInternal, err)
		}

		result = moved
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("RescheduleBooking: successfully rescheduled booking id=%s to %s %s",
		result.ID, req.Date.Format(domain.DateFormat), req.StartTime)
	uc.metrics.BookingRescheduled()

	// 11. Сбрасываем выбранный слот и перегенерируем сетки обоих дней
	uc.schedule.ClearSelectedSlot()
	if err := uc.schedule.Regenerate(ctx, oldDate); err != nil {
		uc.logger.Error("RescheduleBooking: failed to regenerate slots for %s: %v",
			oldDate.Format(domain.DateFormat), err)
	}
	if !domain.SameDay(oldDate, req.Date) {
		if err := uc.schedule.Regenerate(ctx, req.Date); err != nil {
			uc.logger.Error("RescheduleBooking: failed to regenerate slots for %s: %v",
				req.Date.Format(domain.DateFormat), err)
		}
	}

	return &Response{
		ID:              result.ID,
		Name:            result.Name,
		Email:           result.Email,
		Phone:           result.Phone,
		Purpose:         result.Purpose,
		BookingDate:     result.BookingDate,
		StartTime:       result.StartTime,
		EndTime:         result.EndTime,
		DurationMinutes: result.DurationMinutes,
		Timezone:        result.Timezone,
		Status:          string(result.Status),
		MeetingLink:     result.MeetingLink,
		CreatedAt:       result.CreatedAt,
		UpdatedAt:       result.UpdatedAt,
	}, nil
}
