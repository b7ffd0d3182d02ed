package availability

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/service/availability/models"
)

// Service сервис для работы с настройками доступности
type Service struct {
	settingsRepo SettingsRepository
	schedule     ScheduleState
	logger       Logger
}

// NewService создает новый экземпляр сервиса настроек
func NewService(
	settingsRepo SettingsRepository,
	schedule ScheduleState,
	logger Logger,
) *Service {
	return &Service{
		settingsRepo: settingsRepo,
		schedule:     schedule,
		logger:       logger,
	}
}

// Get возвращает текущие настройки доступности
func (s *Service) Get(ctx context.Context) (*models.SettingsResponse, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Get: repository error: %v", err)
		return nil, fmt.Errorf("%w: Get - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSettings(settings), nil
}

// Update частично обновляет настройки доступности.
// Непереданные поля сохраняют текущие значения; результат слияния
// валидируется целиком до записи. Существующие бронирования под новые
// правила не перепроверяются.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("Update: updating availability settings")

	patch, err := req.ToDomainPatch()
	if err != nil {
		s.logger.Warn("Update: invalid patch: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	current, err := s.settingsRepo.Get(ctx)
	if err != nil {
		s.logger.Error("Update: failed to get current settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	merged := current.Apply(patch)

	if err := s.validateSettings(merged); err != nil {
		s.logger.Warn("Update: validation failed: %v", err)
		return nil, err
	}

	stored, err := s.settingsRepo.Replace(ctx, merged)
	if err != nil {
		s.logger.Error("Update: failed to replace settings: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: settings updated, workingDays=%v, hours=%s-%s, buffer=%d, notice=%d, advance=%d",
		stored.WorkingDays, stored.WorkingHours.Start, stored.WorkingHours.End,
		stored.BufferTimeMinutes, stored.MinNoticeHours, stored.MaxAdvanceBookingDays)

	// Сетка выбранного дня пересчитывается под новые правила
	if err := s.schedule.RefreshSelected(ctx); err != nil {
		s.logger.Error("Update: failed to refresh schedule: %v", err)
	}

	return models.FromDomainSettings(stored), nil
}

// validateSettings проверяет согласованность настроек после слияния
func (s *Service) validateSettings(settings *domain.AvailabilitySettings) error {
	if len(settings.WorkingDays) == 0 {
		return fmt.Errorf("%w: working days must not be empty", ErrInvalidInput)
	}

	if err := settings.WorkingHours.Start.Validate(); err != nil {
		return fmt.Errorf("%w: invalid working hours start: %v", ErrInvalidInput, err)
	}
	if err := settings.WorkingHours.End.Validate(); err != nil {
		return fmt.Errorf("%w: invalid working hours end: %v", ErrInvalidInput, err)
	}
	if !settings.WorkingHours.Start.IsBefore(settings.WorkingHours.End) {
		return fmt.Errorf("%w: working hours start must be before end", ErrInvalidInput)
	}

	if settings.BufferTimeMinutes < 0 {
		return fmt.Errorf("%w: buffer time must not be negative", ErrInvalidInput)
	}
	if settings.MinNoticeHours < 0 {
		return fmt.Errorf("%w: min notice must not be negative", ErrInvalidInput)
	}
	if settings.MaxAdvanceBookingDays < 0 {
		return fmt.Errorf("%w: max advance booking must not be negative", ErrInvalidInput)
	}

	if len(settings.AllowedDurations) == 0 {
		return fmt.Errorf("%w: allowed durations must not be empty", ErrInvalidInput)
	}
	for _, d := range settings.AllowedDurations {
		if d <= 0 {
			return fmt.Errorf("%w: durations must be positive", ErrInvalidInput)
		}
	}

	return nil
}
