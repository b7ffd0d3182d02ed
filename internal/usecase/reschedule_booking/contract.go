package reschedule_booking

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Reschedule(ctx context.Context, id string, date time.Time, start, end types.TimeString) (*domain.Booking, error)
}

// SettingsRepository интерфейс репозитория настроек доступности
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.AvailabilitySettings, error)
}

// ScheduleState интерфейс состояния расписания: после переноса сетки старого
// и нового дня перегенерируются, выбранный слот сбрасывается
type ScheduleState interface {
	ClearSelectedSlot()
	Regenerate(ctx context.Context, date time.Time) error
}

// MetricsRecorder интерфейс метрик жизненного цикла бронирований
type MetricsRecorder interface {
	BookingRescheduled()
	BookingConflictRejected()
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
