package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ScheduleService interface {
	AvailableSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
	GridSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
