package set_selection

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ScheduleService interface {
	SetSelectedDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error)
	SetSelectedSlot(slotID string) (*domain.TimeSlot, error)
	ClearSelectedSlot()
	SelectedDate() time.Time
	SelectedSlot() *domain.TimeSlot
	Slots() []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
