package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	rescheduleBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/reschedule_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// RescheduleBookingRequest HTTP request model
type RescheduleBookingRequest struct {
	Date      string `json:"date"`      // "2026-03-09"
	StartTime string `json:"startTime"` // "10:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       *string `json:"phone,omitempty"`
	Purpose     string  `json:"purpose"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	Duration    int     `json:"duration"`
	Timezone    string  `json:"timezone"`
	Status      string  `json:"status"`
	MeetingLink *string `json:"meetingLink,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *RescheduleBookingRequest) ToUseCaseRequest(bookingID string) (*rescheduleBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &rescheduleBooking.Request{
		BookingID: bookingID,
		Date:      bookingDate,
		StartTime: startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *rescheduleBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:          resp.ID,
		Name:        resp.Name,
		Email:       resp.Email,
		Phone:       resp.Phone,
		Purpose:     resp.Purpose,
		Date:        resp.BookingDate.Format(domain.DateFormat),
		StartTime:   resp.StartTime.String(),
		EndTime:     resp.EndTime.String(),
		Duration:    resp.DurationMinutes,
		Timezone:    resp.Timezone,
		Status:      resp.Status,
		MeetingLink: resp.MeetingLink,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
