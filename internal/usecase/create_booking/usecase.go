package create_booking

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	meetLink     MeetingLinkProvider
	schedule     ScheduleState
	txManager    TransactionManager
	metrics      MetricsRecorder
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	meetLink MeetingLinkProvider,
	schedule ScheduleState,
	txManager TransactionManager,
	metrics MetricsRecorder,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		meetLink:     meetLink,
		schedule:     schedule,
		txManager:    txManager,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Проверка конфликтов и вставка выполняются под сериализующей блокировкой,
// чтобы два конкурентных запроса не заняли один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s, duration=%d",
		req.Email, req.Date.Format(domain.DateFormat), req.StartTime, req.DurationMinutes)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки доступности
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("CreateBooking: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Проверяем длительность встречи
	if !settings.AllowsDuration(req.DurationMinutes) {
		uc.logger.Warn("CreateBooking: duration %d is not allowed", req.DurationMinutes)
		return nil, fmt.Errorf("%w: %d minutes", ErrDurationNotAllowed, req.DurationMinutes)
	}

	// 5. Валидация даты с учетом горизонта бронирования
	if err := validateDate(req.Date, now, settings.MaxAdvanceBookingDays); err != nil {
		uc.logger.Warn("CreateBooking: date validation failed: %v", err)
		return nil, err
	}

	// 6. Проверяем, что день рабочий
	if !settings.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Warn("CreateBooking: %s is not a working day", req.Date.Format(domain.DateFormat))
		return nil, ErrDayNotAvailable
	}

	// 7. Проверяем, что время начала лежит на сетке слотов
	if err := validateSlotAlignment(req.StartTime, settings.WorkingHours); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 8. Проверяем минимальный интервал до начала встречи
	if err := validateNotice(req.Date, req.StartTime, now, settings.MinNoticeHours); err != nil {
		uc.logger.Warn("CreateBooking: notice validation failed: %v", err)
		return nil, err
	}

	// 9. Вычисляем время окончания встречи
	endTime, err := req.StartTime.AddMinutes(req.DurationMinutes)
	if err != nil {
		uc.logger.Warn("CreateBooking: meeting would cross midnight: %v", err)
		return nil, fmt.Errorf("%w: meeting does not fit into the day", ErrInvalidTimeSlot)
	}

	// Переменная для хранения результата
	var result *domain.Booking

	// 10. Проверка конфликтов и вставка выполняются атомарно
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 10.1. Получаем активные бронирования на эту дату
		bookings, err := uc.bookingRepo.ListWithFilter(txCtx, domain.BookingsFilter{
			Date: &req.Date,
		})
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 10.2. Проверяем конфликты с учётом буферного времени
		for _, existing := range bookings {
			conflict, err := domain.OverlapsPadded(
				req.StartTime, endTime,
				existing.StartTime, existing.EndTime,
				settings.BufferTimeMinutes,
			)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to check conflict with booking id=%s: %v", existing.ID, err)
				return fmt.Errorf("%w: failed to check conflicts: %v", ErrInternal, err)
			}
			if conflict {
				uc.logger.Warn("CreateBooking: slot %s-%s conflicts with booking id=%s",
					req.StartTime, endTime, existing.ID)
				uc.metrics.BookingConflictRejected()
				return ErrSlotNotAvailable
			}
		}

		// 10.3. Получаем ссылку на видеовстречу
		link, err := uc.meetLink.MeetingLink(txCtx)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get meeting link: %v", err)
			return fmt.Errorf("%w: failed to get meeting link: %v", ErrInternal, err)
		}

		// 10.4. Сохраняем бронирование
		booking := &domain.Booking{
			Name:            req.Name,
			Email:           req.Email,
			Phone:           req.Phone,
			Purpose:         req.Purpose,
			BookingDate:     domain.StartOfDay(req.Date),
			StartTime:       req.StartTime,
			EndTime:         endTime,
			DurationMinutes: req.DurationMinutes,
			Timezone:        req.Timezone,
			Status:          domain.StatusConfirmed,
			MeetingLink:     ptr.Ptr(link),
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", result.ID)
	uc.metrics.BookingCreated()

	// 11. Сбрасываем выбранный слот и перегенерируем сетку дня
	uc.schedule.ClearSelectedSlot()
	if err := uc.schedule.Regenerate(ctx, req.Date); err != nil {
		uc.logger.Error("CreateBooking: failed to regenerate slots for %s: %v",
			req.Date.Format(domain.DateFormat), err)
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
