package availability

import (
	"context"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек доступности
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
	Replace(ctx context.Context, settings *domain.AvailabilitySettings) (*domain.AvailabilitySettings, error)
}

// ScheduleState интерфейс состояния расписания: после смены правил сетка
// слотов выбранного дня перегенерируется
type ScheduleState interface {
	RefreshSelected(ctx context.Context) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
