package bookings

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id string) error
}

// ScheduleState интерфейс состояния расписания: после отмены сетка слотов
// дня бронирования перегенерируется
type ScheduleState interface {
	Regenerate(ctx context.Context, date time.Time) error
}

// MetricsRecorder интерфейс метрик жизненного цикла бронирований
type MetricsRecorder interface {
	BookingCancelled()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
