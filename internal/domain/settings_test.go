package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SchedulingService/pkg/ptr"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

func TestAvailabilitySettings_Apply(t *testing.T) {
	base := DefaultAvailabilitySettings()

	t.Run("empty patch changes nothing", func(t *testing.T) {
		merged := base.Apply(&AvailabilitySettingsPatch{})

		assert.Equal(t, base.WorkingDays, merged.WorkingDays)
		assert.Equal(t, base.WorkingHours, merged.WorkingHours)
		assert.Equal(t, base.BufferTimeMinutes, merged.BufferTimeMinutes)
		assert.Equal(t, base.MinNoticeHours, merged.MinNoticeHours)
		assert.Equal(t, base.MaxAdvanceBookingDays, merged.MaxAdvanceBookingDays)
		assert.Equal(t, base.AllowedDurations, merged.AllowedDurations)
	})

	t.Run("partial patch leaves unnamed fields intact", func(t *testing.T) {
		merged := base.Apply(&AvailabilitySettingsPatch{
			MinNoticeHours:    ptr.Ptr(4),
			WorkingHoursStart: ptr.Ptr(types.TimeString("10:00")),
		})

		assert.Equal(t, 4, merged.MinNoticeHours)
		assert.Equal(t, types.TimeString("10:00"), merged.WorkingHours.Start)
		assert.Equal(t, types.TimeString("17:00"), merged.WorkingHours.End)
		assert.Equal(t, base.BufferTimeMinutes, merged.BufferTimeMinutes)
		assert.Equal(t, base.AllowedDurations, merged.AllowedDurations)
	})

	t.Run("does not mutate the receiver", func(t *testing.T) {
		before := base.Clone()
		_ = base.Apply(&AvailabilitySettingsPatch{
			WorkingDays:      ptr.Ptr([]time.Weekday{time.Saturday}),
			AllowedDurations: ptr.Ptr([]int{45}),
		})

		assert.Equal(t, before, base)
	})
}

func TestAvailabilitySettings_Helpers(t *testing.T) {
	s := DefaultAvailabilitySettings()

	assert.True(t, s.IsWorkingDay(time.Monday))
	assert.False(t, s.IsWorkingDay(time.Sunday))

	assert.True(t, s.AllowsDuration(30))
	assert.False(t, s.AllowsDuration(45))

	assert.True(t, s.HasAdvanceBookingLimit())
	s.MaxAdvanceBookingDays = 0
	assert.False(t, s.HasAdvanceBookingLimit())
}

func TestBooking_StatusHelpers(t *testing.T) {
	b := &Booking{Status: StatusConfirmed}
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())

	b.Status = StatusRescheduled
	assert.True(t, b.IsActive())
	assert.True(t, b.CanBeCancelled())
	assert.True(t, b.CanBeRescheduled())

	b.Status = StatusCancelled
	assert.False(t, b.IsActive())
	assert.True(t, b.IsCancelled())
	assert.False(t, b.CanBeCancelled())
	assert.False(t, b.CanBeRescheduled())
}

func TestSlotID(t *testing.T) {
	date := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "2026-03-02-09:30", SlotID(date, "09:30"))
}

func TestSameDay(t *testing.T) {
	a := time.Date(2026, 3, 2, 23, 59, 0, 0, time.UTC)
	b := time.Date(2026, 3, 2, 0, 1, 0, 0, time.UTC)
	c := time.Date(2026, 3, 3, 0, 0, 0, 0, time.UTC)

	assert.True(t, SameDay(a, b))
	assert.False(t, SameDay(a, c))
}
