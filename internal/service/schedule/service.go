package schedule

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/generate_slots"
)

// Service хранит состояние расписания: выбранную дату, выбранный слот и
// сетку слотов выбранного дня. Сетка всегда заменяется целиком, частичных
// обновлений нет.
type Service struct {
	generator SlotGenerator
	logger    Logger

	mu           sync.RWMutex
	selectedDate time.Time
	selectedSlot *domain.TimeSlot
	slots        []domain.TimeSlot
}

// NewService создает новый экземпляр сервиса расписания
func NewService(generator SlotGenerator, logger Logger) *Service {
	return &Service{
		generator: generator,
		logger:    logger,
	}
}

// SetSelectedDate выбирает дату: сетка слотов генерируется заново,
// выбранный слот сбрасывается
func (s *Service) SetSelectedDate(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	resp, err := s.generator.Execute(ctx, &generate_slots.Request{Date: date})
	if err != nil {
		s.logger.Error("SetSelectedDate: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.selectedDate = domain.StartOfDay(date)
	s.selectedSlot = nil
	s.slots = resp.Slots
	s.mu.Unlock()

	s.logger.Info("SetSelectedDate: selected %s, %d slots", date.Format(domain.DateFormat), len(resp.Slots))
	return s.Slots(), nil
}

// SetSelectedSlot выбирает слот из сетки выбранного дня
func (s *Service) SetSelectedSlot(slotID string) (*domain.TimeSlot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.selectedDate.IsZero() {
		return nil, ErrNoDateSelected
	}

	for i := range s.slots {
		if s.slots[i].ID != slotID {
			continue
		}
		if !s.slots[i].IsAvailable {
			return nil, ErrSlotNotAvailable
		}
		slot := s.slots[i]
		s.selectedSlot = &slot
		return &slot, nil
	}

	return nil, ErrSlotNotFound
}

// ClearSelectedSlot сбрасывает выбранный слот
func (s *Service) ClearSelectedSlot() {
	s.mu.Lock()
	s.selectedSlot = nil
	s.mu.Unlock()
}

// SelectedDate возвращает выбранную дату; нулевое время означает, что дата не выбрана
func (s *Service) SelectedDate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SelectedSlot возвращает копию выбранного слота или nil
func (s *Service) SelectedSlot() *domain.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.selectedSlot == nil {
		return nil
	}
	slot := *s.selectedSlot
	return &slot
}

// Slots возвращает копию сетки слотов выбранного дня
func (s *Service) Slots() []domain.TimeSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.TimeSlot(nil), s.slots...)
}

// AvailableSlots возвращает только доступные слоты на указанную дату.
// Чистый запрос: состояние расписания не изменяется.
func (s *Service) AvailableSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	resp, err := s.generator.Execute(ctx, &generate_slots.Request{Date: date})
	if err != nil {
		s.logger.Error("AvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	available := make([]domain.TimeSlot, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		if slot.IsAvailable {
			available = append(available, slot)
		}
	}

	return available, nil
}

// GridSlots возвращает полную сетку слотов на указанную дату, включая
// занятые. Чистый запрос: состояние расписания не изменяется.
func (s *Service) GridSlots(ctx context.Context, date time.Time) ([]domain.TimeSlot, error) {
	resp, err := s.generator.Execute(ctx, &generate_slots.Request{Date: date})
	if err != nil {
		s.logger.Error("GridSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	return resp.Slots, nil
}

// Regenerate перестраивает сетку, если указанная дата совпадает с выбранной.
// Выбранный слот сбрасывается, если он пропал из сетки или стал недоступен.
func (s *Service) Regenerate(ctx context.Context, date time.Time) error {
	s.mu.RLock()
	selected := s.selectedDate
	s.mu.RUnlock()

	if selected.IsZero() || !domain.SameDay(selected, date) {
		return nil
	}

	resp, err := s.generator.Execute(ctx, &generate_slots.Request{Date: selected})
	if err != nil {
		s.logger.Error("Regenerate: failed to generate slots for %s: %v",
			selected.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	s.mu.Lock()
	s.slots = resp.Slots
	if s.selectedSlot != nil {
		s.selectedSlot = findAvailable(resp.Slots, s.selectedSlot.ID)
	}
	s.mu.Unlock()

	s.logger.Info("Regenerate: rebuilt %d slots for %s", len(resp.Slots), selected.Format(domain.DateFormat))
	return nil
}

// RefreshSelected перестраивает сетку выбранного дня, если дата выбрана
func (s *Service) RefreshSelected(ctx context.Context) error {
	selected := s.SelectedDate()
	if selected.IsZero() {
		return nil
	}
	return s.Regenerate(ctx, selected)
}

func findAvailable(slots []domain.TimeSlot, slotID string) *domain.TimeSlot {
	for i := range slots {
		if slots[i].ID == slotID && slots[i].IsAvailable {
			slot := slots[i]
			return &slot
		}
	}
	return nil
}
