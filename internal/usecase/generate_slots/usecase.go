package generate_slots

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// UseCase use case для генерации сетки слотов на день
type UseCase struct {
	bookingRepo  BookingRepository
	settingsRepo SettingsRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		settingsRepo: settingsRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case генерации слотов.
// Для нерабочих дней и дат вне горизонта бронирования возвращает пустой
// список: это валидный ответ, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GenerateSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GenerateSlots: date=%s", req.Date.Format(domain.DateFormat))

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки доступности
	settings, err := uc.settingsRepo.Get(ctx)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get settings: %v", err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	// 4. Нерабочий день, прошедшая дата или дата за горизонтом: пустая сетка
	if !settings.IsWorkingDay(req.Date.Weekday()) {
		uc.logger.Info("GenerateSlots: %s is not a working day", req.Date.Format(domain.DateFormat))
		return &Response{Date: domain.StartOfDay(req.Date), Slots: []domain.TimeSlot{}}, nil
	}

	if domain.DateInPast(req.Date, now) || dateBeyondLimit(req.Date, now, settings.MaxAdvanceBookingDays) {
		uc.logger.Info("GenerateSlots: date %s is out of the booking window", req.Date.Format(domain.DateFormat))
		return &Response{Date: domain.StartOfDay(req.Date), Slots: []domain.TimeSlot{}}, nil
	}

	// 5. Получаем активные бронирования на эту дату
	bookings, err := uc.bookingRepo.ListWithFilter(ctx, domain.BookingsFilter{
		Date: &req.Date,
	})
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 6. Строим сетку слотов
	slots, err := buildSlots(settings, req.Date, now, bookings)
	if err != nil {
		uc.logger.Error("GenerateSlots: failed to build slots: %v", err)
		return nil, fmt.Errorf("%w: failed to build slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GenerateSlots: generated %d slots for %s", len(slots), req.Date.Format(domain.DateFormat))

	return &Response{
		Date:  domain.StartOfDay(req.Date),
		Slots: slots,
	}, nil
}
