package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/booking"
	settingsRepo "github.com/m04kA/SMC-SchedulingService/internal/infra/storage/settings"
	"github.com/m04kA/SMC-SchedulingService/internal/usecase/generate_slots"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Будущий понедельник относительно реального времени не нужен: сетка
// строится через настоящий генератор с датой далеко в будущем
var testDate = time.Now().AddDate(1, 0, 0)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type testEnv struct {
	svc      *Service
	bookings *bookingRepo.Repository
}

func newTestEnv() *testEnv {
	settings := domain.DefaultAvailabilitySettings()
	settings.BufferTimeMinutes = 0
	settings.MaxAdvanceBookingDays = 0
	settings.WorkingDays = []time.Weekday{
		time.Sunday, time.Monday, time.Tuesday, time.Wednesday,
		time.Thursday, time.Friday, time.Saturday,
	}

	bookings := bookingRepo.NewRepository(0)
	generator := generate_slots.NewUseCase(bookings, settingsRepo.NewRepository(settings), nopLogger{})

	return &testEnv{
		svc:      NewService(generator, nopLogger{}),
		bookings: bookings,
	}
}

func (e *testEnv) book(t *testing.T, start, end types.TimeString) *domain.Booking {
	t.Helper()
	created, err := e.bookings.Create(context.Background(), &domain.Booking{
		Name:            "Ivan Petrov",
		Email:           "ivan@example.com",
		Purpose:         "intro call",
		BookingDate:     testDate,
		StartTime:       start,
		EndTime:         end,
		DurationMinutes: 30,
		Timezone:        "Europe/Moscow",
		Status:          domain.StatusConfirmed,
	})
	require.NoError(t, err)
	return created
}

func TestService_SetSelectedDate(t *testing.T) {
	env := newTestEnv()

	slots, err := env.svc.SetSelectedDate(context.Background(), testDate)
	require.NoError(t, err)
	require.Len(t, slots, 16)

	assert.True(t, domain.SameDay(env.svc.SelectedDate(), testDate))
	assert.Nil(t, env.svc.SelectedSlot())
	assert.Len(t, env.svc.Slots(), 16)
}

func TestService_SetSelectedSlot(t *testing.T) {
	env := newTestEnv()

	t.Run("without date", func(t *testing.T) {
		_, err := env.svc.SetSelectedSlot("whatever")
		require.ErrorIs(t, err, ErrNoDateSelected)
	})

	slots, err := env.svc.SetSelectedDate(context.Background(), testDate)
	require.NoError(t, err)

	t.Run("valid slot", func(t *testing.T) {
		slot, err := env.svc.SetSelectedSlot(slots[0].ID)
		require.NoError(t, err)
		assert.Equal(t, slots[0].ID, slot.ID)

		selected := env.svc.SelectedSlot()
		require.NotNil(t, selected)
		assert.Equal(t, slots[0].ID, selected.ID)
	})

	t.Run("unknown slot", func(t *testing.T) {
		_, err := env.svc.SetSelectedSlot("2020-01-01-09:00")
		require.ErrorIs(t, err, ErrSlotNotFound)
	})

	t.Run("booked slot", func(t *testing.T) {
		env.book(t, "10:00", "10:30")
		require.NoError(t, env.svc.Regenerate(context.Background(), testDate))

		_, err := env.svc.SetSelectedSlot(domain.SlotID(domain.StartOfDay(testDate), "10:00"))
		require.ErrorIs(t, err, ErrSlotNotAvailable)
	})
}

func TestService_ClearSelectedSlot(t *testing.T) {
	env := newTestEnv()
	slots, err := env.svc.SetSelectedDate(context.Background(), testDate)
	require.NoError(t, err)

	_, err = env.svc.SetSelectedSlot(slots[0].ID)
	require.NoError(t, err)

	env.svc.ClearSelectedSlot()
	assert.Nil(t, env.svc.SelectedSlot())
}

func TestService_Regenerate(t *testing.T) {
	env := newTestEnv()
	slots, err := env.svc.SetSelectedDate(context.Background(), testDate)
	require.NoError(t, err)

	// Выбираем слот, затем занимаем его бронированием
	_, err = env.svc.SetSelectedSlot(slots[2].ID)
	require.NoError(t, err)
	env.book(t, slots[2].StartTime, slots[2].EndTime)

	require.NoError(t, env.svc.Regenerate(context.Background(), testDate))

	// Сетка перестроена, потерявший доступность выбранный слот сброшен
	refreshed := env.svc.Slots()
	require.Len(t, refreshed, 16)
	assert.True(t, refreshed[2].IsBooked)
	assert.Nil(t, env.svc.SelectedSlot())

	t.Run("other date is a no-op", func(t *testing.T) {
		before := env.svc.Slots()
		require.NoError(t, env.svc.Regenerate(context.Background(), testDate.AddDate(0, 0, 5)))
		assert.Equal(t, before, env.svc.Slots())
	})
}

func TestService_AvailableSlots(t *testing.T) {
	env := newTestEnv()
	env.book(t, "10:00", "11:00")

	available, err := env.svc.AvailableSlots(context.Background(), testDate)
	require.NoError(t, err)

	// 16 слотов минус два занятых часовым бронированием
	assert.Len(t, available, 14)
	for _, slot := range available {
		assert.True(t, slot.IsAvailable)
		assert.False(t, slot.IsBooked)
	}

	// Запрос не изменяет состояние
	assert.True(t, env.svc.SelectedDate().IsZero())
	assert.Empty(t, env.svc.Slots())
}

func TestService_RefreshSelected(t *testing.T) {
	env := newTestEnv()

	// Без выбранной даты Regenerate ничего не делает
	require.NoError(t, env.svc.RefreshSelected(context.Background()))

	_, err := env.svc.SetSelectedDate(context.Background(), testDate)
	require.NoError(t, err)

	env.book(t, "14:00", "14:30")
	require.NoError(t, env.svc.RefreshSelected(context.Background()))

	byStart := make(map[types.TimeString]domain.TimeSlot)
	for _, slot := range env.svc.Slots() {
		byStart[slot.StartTime] = slot
	}
	assert.True(t, byStart["14:00"].IsBooked)
}
