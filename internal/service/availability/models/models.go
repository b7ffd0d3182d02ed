package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

var (
	// ErrInvalidWeekday возвращается при дне недели вне диапазона 0-6
	ErrInvalidWeekday = errors.New("weekday must be between 0 and 6")
)

// Request модели

// UpdateSettingsRequest запрос на частичное обновление настроек доступности.
// Все поля опциональны - обновляются только переданные значения.
// Дни недели нумеруются 0-6, воскресенье = 0.
type UpdateSettingsRequest struct {
	WorkingDays           *[]int  `json:"workingDays,omitempty"`
	WorkingHoursStart     *string `json:"workingHoursStart,omitempty"` // "09:00"
	WorkingHoursEnd       *string `json:"workingHoursEnd,omitempty"`   // "17:00"
	BufferTimeMinutes     *int    `json:"bufferTime,omitempty"`
	MinNoticeHours        *int    `json:"minNotice,omitempty"`
	MaxAdvanceBookingDays *int    `json:"maxAdvanceBooking,omitempty"` // 0 = без ограничений
	AllowedDurations      *[]int  `json:"allowedDurations,omitempty"`
}

// ToDomainPatch конвертирует request в domain патч
func (r *UpdateSettingsRequest) ToDomainPatch() (*domain.AvailabilitySettingsPatch, error) {
	patch := &domain.AvailabilitySettingsPatch{
		BufferTimeMinutes:     r.BufferTimeMinutes,
		MinNoticeHours:        r.MinNoticeHours,
		MaxAdvanceBookingDays: r.MaxAdvanceBookingDays,
		AllowedDurations:      r.AllowedDurations,
	}

	if r.WorkingDays != nil {
		days := make([]time.Weekday, 0, len(*r.WorkingDays))
		for _, d := range *r.WorkingDays {
			if d < 0 || d > 6 {
				return nil, ErrInvalidWeekday
			}
			days = append(days, time.Weekday(d))
		}
		patch.WorkingDays = &days
	}

	if r.WorkingHoursStart != nil {
		start, err := types.NewTimeStringFromString(*r.WorkingHoursStart)
		if err != nil {
			return nil, err
		}
		patch.WorkingHoursStart = &start
	}

	if r.WorkingHoursEnd != nil {
		end, err := types.NewTimeStringFromString(*r.WorkingHoursEnd)
		if err != nil {
			return nil, err
		}
		patch.WorkingHoursEnd = &end
	}

	return patch, nil
}

// Response модели

// SettingsResponse ответ с настройками доступности
type SettingsResponse struct {
	WorkingDays           []int     `json:"workingDays"`
	WorkingHoursStart     string    `json:"workingHoursStart"`
	WorkingHoursEnd       string    `json:"workingHoursEnd"`
	BufferTimeMinutes     int       `json:"bufferTime"`
	MinNoticeHours        int       `json:"minNotice"`
	MaxAdvanceBookingDays int       `json:"maxAdvanceBooking"`
	AllowedDurations      []int     `json:"allowedDurations"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// Методы конвертации

// FromDomainSettings конвертирует domain модель в DTO
func FromDomainSettings(s *domain.AvailabilitySettings) *SettingsResponse {
	if s == nil {
		return nil
	}

	days := make([]int, 0, len(s.WorkingDays))
	for _, d := range s.WorkingDays {
		days = append(days, int(d))
	}

	return &SettingsResponse{
		WorkingDays:           days,
		WorkingHoursStart:     s.WorkingHours.Start.String(),
		WorkingHoursEnd:       s.WorkingHours.End.String(),
		BufferTimeMinutes:     s.BufferTimeMinutes,
		MinNoticeHours:        s.MinNoticeHours,
		MaxAdvanceBookingDays: s.MaxAdvanceBookingDays,
		AllowedDurations:      append([]int(nil), s.AllowedDurations...),
		UpdatedAt:             s.UpdatedAt,
	}
}
