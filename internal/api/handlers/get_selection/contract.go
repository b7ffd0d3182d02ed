package get_selection

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

type ScheduleService interface {
	SelectedDate() time.Time
	SelectedSlot() *domain.TimeSlot
	Slots() []domain.TimeSlot
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
