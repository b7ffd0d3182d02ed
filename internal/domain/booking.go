package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed   BookingStatus = "confirmed"
	StatusCancelled   BookingStatus = "cancelled"
	StatusRescheduled BookingStatus = "rescheduled"
)

// Booking represents a scheduled meeting
type Booking struct {
	ID      string
	Name    string
	Email   string
	Phone   *string
	Purpose string

	BookingDate     time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	DurationMinutes int

	// Timezone IANA-зона браузера бронирующего; хранится как метаданные,
	// никакой конвертации времени не выполняется
	Timezone string

	Status      BookingStatus
	MeetingLink *string

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking blocks overlapping slots
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusRescheduled
}

// CanBeRescheduled returns true if the booking can be moved to another slot
func (b *Booking) CanBeRescheduled() bool {
	return b.Status == StatusConfirmed || b.Status == StatusRescheduled
}

// BookingsFilter фильтр для выборки бронирований
type BookingsFilter struct {
	Date            *time.Time     // Фильтр по дате (опционально, время суток игнорируется)
	Status          *BookingStatus // Фильтр по статусу (опционально)
	IncludeInactive bool           // Включать ли отменённые бронирования
}
