package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// TimeSlot represents a candidate booking interval, derived on demand.
// The slot list is always regenerated in full, never patched incrementally.
type TimeSlot struct {
	ID          string // "YYYY-MM-DD-HH:MM", детерминированный по дате и времени начала
	Date        time.Time
	StartTime   types.TimeString
	EndTime     types.TimeString
	IsAvailable bool
	IsBooked    bool
}

// SlotID возвращает детерминированный идентификатор слота
func SlotID(date time.Time, start types.TimeString) string {
	return date.Format(DateFormat) + "-" + start.String()
}

// SameDay проверяет, что две даты относятся к одному и тому же дню
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// StartOfDay обнуляет время суток
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DateInPast проверяет, что дата раньше сегодняшнего дня (время суток игнорируется)
func DateInPast(date, now time.Time) bool {
	return StartOfDay(date).Before(StartOfDay(now))
}
