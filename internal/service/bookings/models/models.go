package models

import (
	"errors"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")
)

// Request модели

// ListBookingsRequest запрос на получение списка бронирований
type ListBookingsRequest struct {
	Date            *time.Time `json:"date,omitempty"`            // Фильтр по дате (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые бронирования
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Date:            r.Date,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Email           string  `json:"email"`
	Phone           *string `json:"phone,omitempty"`
	Purpose         string  `json:"purpose"`
	BookingDate     string  `json:"date"`      // "2026-03-09"
	StartTime       string  `json:"startTime"` // "10:00"
	EndTime         string  `json:"endTime"`   // "10:30"
	DurationMinutes int     `json:"duration"`
	Timezone        string  `json:"timezone"`
	Status          string  `json:"status"`
	MeetingLink     *string `json:"meetingLink,omitempty"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:              b.ID,
		Name:            b.Name,
		Email:           b.Email,
		Phone:           b.Phone,
		Purpose:         b.Purpose,
		BookingDate:     b.BookingDate.Format(domain.DateFormat),
		StartTime:       b.StartTime.String(),
		EndTime:         b.EndTime.String(),
		DurationMinutes: b.DurationMinutes,
		Timezone:        b.Timezone,
		Status:          string(b.Status),
		MeetingLink:     b.MeetingLink,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelled := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelled
	}

	return resp
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	result := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		result = append(result, *FromDomainBooking(b))
	}
	return &BookingListResponse{Bookings: result}
}

// ToDomainBookingStatus конвертирует строку в domain статус
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	switch domain.BookingStatus(status) {
	case domain.StatusConfirmed, domain.StatusCancelled, domain.StatusRescheduled:
		return domain.BookingStatus(status), nil
	default:
		return "", ErrInvalidStatus
	}
}
