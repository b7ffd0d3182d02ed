package domain

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// WorkingHours дневное окно доступности
type WorkingHours struct {
	Start types.TimeString
	End   types.TimeString
}

// AvailabilitySettings represents the operator-configured booking rules.
// A single process-wide record, mutable through partial updates.
type AvailabilitySettings struct {
	WorkingDays           []time.Weekday
	WorkingHours          WorkingHours
	BufferTimeMinutes     int
	MinNoticeHours        int
	MaxAdvanceBookingDays int // 0 = unlimited
	AllowedDurations      []int

	UpdatedAt time.Time
}

// DefaultAvailabilitySettings returns the built-in settings
func DefaultAvailabilitySettings() *AvailabilitySettings {
	return &AvailabilitySettings{
		WorkingDays:           append([]time.Weekday(nil), DefaultWorkingDays...),
		WorkingHours:          DefaultWorkingHours,
		BufferTimeMinutes:     DefaultBufferTimeMinutes,
		MinNoticeHours:        DefaultMinNoticeHours,
		MaxAdvanceBookingDays: DefaultMaxAdvanceBookingDays,
		AllowedDurations:      append([]int(nil), DefaultAllowedDurations...),
	}
}

// IsWorkingDay returns true if the weekday admits bookings
func (s *AvailabilitySettings) IsWorkingDay(day time.Weekday) bool {
	for _, d := range s.WorkingDays {
		if d == day {
			return true
		}
	}
	return false
}

// AllowsDuration returns true if the meeting length is permitted
func (s *AvailabilitySettings) AllowsDuration(minutes int) bool {
	for _, d := range s.AllowedDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// HasAdvanceBookingLimit returns true if there's a limit on how far in advance bookings can be made
func (s *AvailabilitySettings) HasAdvanceBookingLimit() bool {
	return s.MaxAdvanceBookingDays > 0
}

// Clone возвращает глубокую копию настроек
func (s *AvailabilitySettings) Clone() *AvailabilitySettings {
	clone := *s
	clone.WorkingDays = append([]time.Weekday(nil), s.WorkingDays...)
	clone.AllowedDurations = append([]int(nil), s.AllowedDurations...)
	return &clone
}

// AvailabilitySettingsPatch частичное обновление настроек.
// Nil-поля не изменяются (shallow merge).
type AvailabilitySettingsPatch struct {
	WorkingDays           *[]time.Weekday
	WorkingHoursStart     *types.TimeString
	WorkingHoursEnd       *types.TimeString
	BufferTimeMinutes     *int
	MinNoticeHours        *int
	MaxAdvanceBookingDays *int
	AllowedDurations      *[]int
}

// Apply возвращает копию настроек с применёнными непустыми полями патча.
// Существующие бронирования под новые правила не перепроверяются.
func (s *AvailabilitySettings) Apply(patch *AvailabilitySettingsPatch) *AvailabilitySettings {
	merged := s.Clone()

	if patch.WorkingDays != nil {
		merged.WorkingDays = append([]time.Weekday(nil), *patch.WorkingDays...)
	}
	if patch.WorkingHoursStart != nil {
		merged.WorkingHours.Start = *patch.WorkingHoursStart
	}
	if patch.WorkingHoursEnd != nil {
		merged.WorkingHours.End = *patch.WorkingHoursEnd
	}
	if patch.BufferTimeMinutes != nil {
		merged.BufferTimeMinutes = *patch.BufferTimeMinutes
	}
	if patch.MinNoticeHours != nil {
		merged.MinNoticeHours = *patch.MinNoticeHours
	}
	if patch.MaxAdvanceBookingDays != nil {
		merged.MaxAdvanceBookingDays = *patch.MaxAdvanceBookingDays
	}
	if patch.AllowedDurations != nil {
		merged.AllowedDurations = append([]int(nil), *patch.AllowedDurations...)
	}

	return merged
}
