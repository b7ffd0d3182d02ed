package booking

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Repository in-memory хранилище бронирований.
//
// Персистентности нет намеренно: данные живут в памяти процесса и теряются
// при перезапуске: это контракт сервиса, а не упущение. Интерфейсы
// репозитория объявлены на стороне потребителей (usecases/services), так что
// SQL-реализацию можно подставить, не трогая движок.
type Repository struct {
	mu       sync.RWMutex
	bookings map[string]*domain.Booking

	// delay искусственная задержка мутаций, имитация сетевого вызова
	// будущего бэкенда; 0 в тестах
	delay time.Duration
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(simulatedLatency time.Duration) *Repository {
	return &Repository{
		bookings: make(map[string]*domain.Booking),
		delay:    simulatedLatency,
	}
}

// simulateBackend ждёт настроенную задержку. Начатая операция всегда
// доводится до конца: отмена контекста на неё не влияет.
func (r *Repository) simulateBackend() {
	if r.delay > 0 {
		time.Sleep(r.delay)
	}
}

// Create сохраняет новое бронирование, назначая ему ID и таймстемпы
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking == nil || booking.StartTime.IsZero() || booking.EndTime.IsZero() {
		return nil, fmt.Errorf("%w: Create - start and end time are required", ErrInvalidBooking)
	}

	r.simulateBackend()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored := cloneBooking(booking)
	stored.ID = uuid.NewString()
	now := time.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	r.bookings[stored.ID] = stored

	return cloneBooking(stored), nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	return cloneBooking(stored), nil
}

// ListWithFilter получает бронирования с фильтрацией по дате и статусу.
// Для конкретной даты результат отсортирован по времени начала (ASC),
// иначе по дате и времени (DESC, сначала новые).
func (r *Repository) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*domain.Booking, 0)
	for _, stored := range r.bookings {
		if filter.Date != nil && !domain.SameDay(stored.BookingDate, *filter.Date) {
			continue
		}
		if filter.Status != nil {
			if stored.Status != *filter.Status {
				continue
			}
		} else if !filter.IncludeInactive && !stored.IsActive() {
			continue
		}
		result = append(result, cloneBooking(stored))
	}

	if filter.Date != nil {
		sort.Slice(result, func(i, j int) bool {
			return result[i].StartTime.IsBefore(result[j].StartTime)
		})
	} else {
		sort.Slice(result, func(i, j int) bool {
			if !domain.SameDay(result[i].BookingDate, result[j].BookingDate) {
				return result[i].BookingDate.After(result[j].BookingDate)
			}
			return result[i].StartTime.IsAfter(result[j].StartTime)
		})
	}

	return result, nil
}

// Cancel переводит бронирование в статус cancelled.
// Остальные поля не изменяются, запись не удаляется.
func (r *Repository) Cancel(ctx context.Context, id string) error {
	r.simulateBackend()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok {
		return ErrBookingNotFound
	}

	now := time.Now()
	stored.Status = domain.StatusCancelled
	stored.CancelledAt = &now
	stored.UpdatedAt = now

	return nil
}

// Reschedule переносит бронирование на новую дату и время,
// переводя его в статус rescheduled
func (r *Repository) Reschedule(ctx context.Context, id string, date time.Time, start, end types.TimeString) (*domain.Booking, error) {
	r.simulateBackend()

	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.bookings[id]
	if !ok {
		return nil, ErrBookingNotFound
	}

	stored.BookingDate = domain.StartOfDay(date)
	stored.StartTime = start
	stored.EndTime = end
	stored.Status = domain.StatusRescheduled
	stored.UpdatedAt = time.Now()

	return cloneBooking(stored), nil
}

func cloneBooking(b *domain.Booking) *domain.Booking {
	clone := *b
	if b.Phone != nil {
		phone := *b.Phone
		clone.Phone = &phone
	}
	if b.MeetingLink != nil {
		link := *b.MeetingLink
		clone.MeetingLink = &link
	}
	if b.CancelledAt != nil {
		cancelled := *b.CancelledAt
		clone.CancelledAt = &cancelled
	}
	return &clone
}
