package generate_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Понедельник, 08:00 UTC
var testNow = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

type stubSettingsRepo struct {
	settings *domain.AvailabilitySettings
}

func (s *stubSettingsRepo) Get(ctx context.Context) (*domain.AvailabilitySettings, error) {
	return s.settings.Clone(), nil
}

type stubBookingRepo struct {
	bookings []*domain.Booking
}

func (s *stubBookingRepo) ListWithFilter(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	result := make([]*domain.Booking, 0)
	for _, b := range s.bookings {
		if filter.Date != nil && !domain.SameDay(b.BookingDate, *filter.Date) {
			continue
		}
		if !filter.IncludeInactive && !b.IsActive() {
			continue
		}
		result = append(result, b)
	}
	return result, nil
}

type fakeTimeProvider struct {
	now time.Time
}

func (f *fakeTimeProvider) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func testSettings() *domain.AvailabilitySettings {
	settings := domain.DefaultAvailabilitySettings()
	settings.BufferTimeMinutes = 0
	return settings
}

func booking(date time.Time, start, end types.TimeString, status domain.BookingStatus) *domain.Booking {
	return &domain.Booking{
		ID:          "b-" + start.String(),
		BookingDate: date,
		StartTime:   start,
		EndTime:     end,
		Status:      status,
	}
}

func newTestUseCase(settings *domain.AvailabilitySettings, bookings ...*domain.Booking) *UseCase {
	uc := NewUseCase(&stubBookingRepo{bookings: bookings}, &stubSettingsRepo{settings: settings}, nopLogger{})
	uc.timeProvider = &fakeTimeProvider{now: testNow}
	return uc
}

func TestUseCase_Execute_FullGrid(t *testing.T) {
	// Будущий понедельник без бронирований
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testSettings())

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	// 09:00-17:00 с шагом 30 минут = 16 слотов
	require.Len(t, resp.Slots, 16)

	first := resp.Slots[0]
	assert.Equal(t, "2026-03-09-09:00", first.ID)
	assert.Equal(t, types.TimeString("09:00"), first.StartTime)
	assert.Equal(t, types.TimeString("09:30"), first.EndTime)

	last := resp.Slots[15]
	assert.Equal(t, types.TimeString("16:30"), last.StartTime)
	assert.Equal(t, types.TimeString("17:00"), last.EndTime)

	for _, slot := range resp.Slots {
		assert.True(t, slot.IsAvailable, "slot %s", slot.ID)
		assert.False(t, slot.IsBooked, "slot %s", slot.ID)
		assert.True(t, domain.SameDay(slot.Date, date))
	}
}

func TestUseCase_Execute_NonWorkingDay(t *testing.T) {
	sunday := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(testSettings())

	resp, err := uc.Execute(context.Background(), &Request{Date: sunday})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_DateOutOfWindow(t *testing.T) {
	t.Run("past date", func(t *testing.T) {
		uc := newTestUseCase(testSettings())

		resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, -3)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("beyond advance limit", func(t *testing.T) {
		uc := newTestUseCase(testSettings())

		// 31 день вперёд при лимите 30 (среда, рабочий день)
		resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 31)})
		require.NoError(t, err)
		assert.Empty(t, resp.Slots)
	})

	t.Run("zero limit means unlimited", func(t *testing.T) {
		settings := testSettings()
		settings.MaxAdvanceBookingDays = 0
		uc := newTestUseCase(settings)

		resp, err := uc.Execute(context.Background(), &Request{Date: testNow.AddDate(0, 0, 365)})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Slots)
	})
}

func TestUseCase_Execute_BookedSlots(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		testSettings(),
		booking(date, "10:00", "11:00", domain.StatusConfirmed),
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)

	byStart := make(map[types.TimeString]domain.TimeSlot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	// Часовое бронирование накрывает два слота
	assert.True(t, byStart["10:00"].IsBooked)
	assert.False(t, byStart["10:00"].IsAvailable)
	assert.True(t, byStart["10:30"].IsBooked)
	assert.False(t, byStart["10:30"].IsAvailable)

	// Граничащие слоты свободны: граница не пересечение
	assert.False(t, byStart["09:30"].IsBooked)
	assert.True(t, byStart["09:30"].IsAvailable)
	assert.False(t, byStart["11:00"].IsBooked)
	assert.True(t, byStart["11:00"].IsAvailable)
}

func TestUseCase_Execute_BufferPadding(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	settings := testSettings()
	settings.BufferTimeMinutes = 15

	uc := newTestUseCase(settings, booking(date, "10:00", "11:00", domain.StatusConfirmed))

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	byStart := make(map[types.TimeString]domain.TimeSlot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	// Соседние слоты попадают в буфер: недоступны, но не заняты
	assert.False(t, byStart["09:30"].IsAvailable)
	assert.False(t, byStart["09:30"].IsBooked)
	assert.False(t, byStart["11:00"].IsAvailable)
	assert.False(t, byStart["11:00"].IsBooked)

	// Слоты за пределами буфера не задеты
	assert.True(t, byStart["09:00"].IsAvailable)
	assert.True(t, byStart["11:30"].IsAvailable)
}

func TestUseCase_Execute_CancelledBookingIgnored(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		testSettings(),
		booking(date, "10:00", "10:30", domain.StatusCancelled),
	)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	for _, slot := range resp.Slots {
		assert.False(t, slot.IsBooked, "slot %s", slot.ID)
		assert.True(t, slot.IsAvailable, "slot %s", slot.ID)
	}
}

func TestUseCase_Execute_TodayMinNotice(t *testing.T) {
	// Сегодня 08:00, minNotice 2 часа: порог 10:00, сравнение строгое
	uc := newTestUseCase(testSettings())

	resp, err := uc.Execute(context.Background(), &Request{Date: testNow})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 16)

	byStart := make(map[types.TimeString]domain.TimeSlot)
	for _, slot := range resp.Slots {
		byStart[slot.StartTime] = slot
	}

	assert.False(t, byStart["09:30"].IsAvailable)
	assert.False(t, byStart["10:00"].IsAvailable, "slot exactly at the threshold is not bookable")
	assert.True(t, byStart["10:30"].IsAvailable)

	// Ранние слоты всё равно присутствуют в сетке
	assert.False(t, byStart["09:00"].IsBooked)
}

func TestUseCase_Execute_GridCoversWindowFully(t *testing.T) {
	// Окно 09:00-10:15 не кратно шагу: последний слот выходит за его конец
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	settings := testSettings()
	settings.WorkingHours = domain.WorkingHours{Start: "09:00", End: "10:15"}

	uc := newTestUseCase(settings)

	resp, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	require.Len(t, resp.Slots, 3)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[2].StartTime)
	assert.Equal(t, types.TimeString("10:30"), resp.Slots[2].EndTime)
}

func TestUseCase_Execute_Deterministic(t *testing.T) {
	date := time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(
		testSettings(),
		booking(date, "13:00", "13:30", domain.StatusConfirmed),
	)

	first, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{Date: date})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := newTestUseCase(testSettings())

	_, err := uc.Execute(context.Background(), &Request{})
	require.ErrorIs(t, err, ErrInvalidInput)
}
