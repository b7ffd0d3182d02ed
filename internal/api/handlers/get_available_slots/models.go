package get_available_slots

import (
	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// SlotResponse HTTP response model
type SlotResponse struct {
	ID          string `json:"id"`        // "2026-03-09-10:00"
	Date        string `json:"date"`      // "2026-03-09"
	StartTime   string `json:"startTime"` // "10:00"
	EndTime     string `json:"endTime"`   // "10:30"
	IsAvailable bool   `json:"isAvailable"`
	IsBooked    bool   `json:"isBooked"`
}

// SlotsListResponse HTTP response model
type SlotsListResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

// FromDomainSlots конвертирует слоты в HTTP response
func FromDomainSlots(date string, slots []domain.TimeSlot) *SlotsListResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, slot := range slots {
		result = append(result, SlotResponse{
			ID:          slot.ID,
			Date:        slot.Date.Format(domain.DateFormat),
			StartTime:   slot.StartTime.String(),
			EndTime:     slot.EndTime.String(),
			IsAvailable: slot.IsAvailable,
			IsBooked:    slot.IsBooked,
		})
	}

	return &SlotsListResponse{
		Date:  date,
		Slots: result,
	}
}
