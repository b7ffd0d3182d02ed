package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
	createBooking "github.com/m04kA/SMC-SchedulingService/internal/usecase/create_booking"
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Purpose   string  `json:"purpose"`
	Duration  int     `json:"duration"`  // 15, 30 или 60
	Timezone  string  `json:"timezone"`  // IANA, например "Europe/Moscow"
	Date      string  `json:"date"`      // "2026-03-09"
	StartTime string  `json:"startTime"` // "10:00"
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
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	bookingDate, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		Name:            r.Name,
		Email:           r.Email,
		Phone:           r.Phone,
		Purpose:         r.Purpose,
		DurationMinutes: r.Duration,
		Timezone:        r.Timezone,
		Date:            bookingDate,
		StartTime:       startTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
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
