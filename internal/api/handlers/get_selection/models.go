package get_selection

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// SelectionResponse HTTP response model: текущее состояние расписания
type SelectionResponse struct {
	SelectedDate *string        `json:"selectedDate"` // null - дата не выбрана
	SelectedSlot *SlotResponse  `json:"selectedSlot"` // null - слот не выбран
	Slots        []SlotResponse `json:"slots"`
}

// FromDomainSelection собирает HTTP response из состояния расписания
func FromDomainSelection(date time.Time, selected *domain.TimeSlot, slots []domain.TimeSlot) *SelectionResponse {
	resp := &SelectionResponse{
		Slots: make([]SlotResponse, 0, len(slots)),
	}

	if !date.IsZero() {
		formatted := date.Format(domain.DateFormat)
		resp.SelectedDate = &formatted
	}

	if selected != nil {
		slot := fromDomainSlot(*selected)
		resp.SelectedSlot = &slot
	}

	for _, slot := range slots {
		resp.Slots = append(resp.Slots, fromDomainSlot(slot))
	}

	return resp
}

func fromDomainSlot(slot domain.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:          slot.ID,
		Date:        slot.Date.Format(domain.DateFormat),
		StartTime:   slot.StartTime.String(),
		EndTime:     slot.EndTime.String(),
		IsAvailable: slot.IsAvailable,
		IsBooked:    slot.IsBooked,
	}
}
