package set_selection

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SetSelectionRequest HTTP request model.
// Оба поля опциональны: date выбирает день (сбрасывая слот), slotId выбирает
// слот в сетке текущего дня. Пустой запрос сбрасывает выбранный слот.
type SetSelectionRequest struct {
	Date   *string `json:"date,omitempty"`   // "2026-03-09"
	SlotID *string `json:"slotId,omitempty"` // "2026-03-09-10:00"
}

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          string `json:"id"`
	Date        string `json:"date"`
	StartTime   string `json:"startTime"`
	EndTime     string `json:"endTime"`
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// SelectionResponse HTTP response model: состояние расписания после изменения
type SelectionResponse struct {
	SelectedDate *string        `json:"selectedDate"`
	SelectedSlot *SlotResponse  `json:"selectedSlot"`
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
