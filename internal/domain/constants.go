package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Slot generation constants
const (
	// SlotStepMinutes фиксированный шаг генерации слотов
	SlotStepMinutes = 30
)

// Default availability settings
const (
	DefaultBufferTimeMinutes     = 15
	DefaultMinNoticeHours        = 2
	DefaultMaxAdvanceBookingDays = 30
)

var (
	// DefaultWorkingDays понедельник-пятница
	DefaultWorkingDays = []time.Weekday{
		time.Monday,
		time.Tuesday,
		time.Wednesday,
		time.Thursday,
		time.Friday,
	}

	// DefaultWorkingHours дневное окно доступности по умолчанию
	DefaultWorkingHours = WorkingHours{
		Start: types.TimeString("09:00"),
		End:   types.TimeString("17:00"),
	}

	// DefaultAllowedDurations допустимые длительности встреч в минутах
	DefaultAllowedDurations = []int{15, 30, 60}
)

// Business validation constants
const (
	MinBufferTimeMinutes     = 0
	MaxBufferTimeMinutes     = 120
	MinNoticeHoursLowerBound = 0
	MinNoticeHoursUpperBound = 168 // 1 week
	MaxAdvanceBookingUpper   = 365 // 1 year
	MaxPurposeLength         = 500
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// InactiveStatuses список статусов неактивных бронирований
// Неактивные бронирования не участвуют в проверке конфликтов
var InactiveStatuses = []BookingStatus{
	StatusCancelled,
}

// ActiveStatuses список статусов активных бронирований
// Активные бронирования блокируют пересекающиеся слоты
var ActiveStatuses = []BookingStatus{
	StatusConfirmed,
	StatusRescheduled,
}
