package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// buildSlots строит полную сетку слотов дня с фиксированным шагом от начала
// рабочего окна. Последний слот может заканчиваться позже конца окна: сетка
// покрывает окно целиком, а не обрезается по нему.
//
// Каждый слот размечается по двум осям:
// - IsBooked: слот строго пересекается с активным бронированием;
// - IsAvailable: слот можно забронировать, то есть не занят, не попадает в буфер
//   вокруг бронирования и (для сегодняшней даты) начинается строго позже
//   now + minNotice.
func buildSlots(
	settings *domain.AvailabilitySettings,
	date time.Time,
	now time.Time,
	bookings []*domain.Booking,
) ([]domain.TimeSlot, error) {
	day := domain.StartOfDay(date)
	today := domain.SameDay(date, now)
	threshold := now.Add(time.Duration(settings.MinNoticeHours) * time.Hour)

	slots := make([]domain.TimeSlot, 0)

	for cur := settings.WorkingHours.Start; cur.IsBefore(settings.WorkingHours.End); {
		slotEnd, err := cur.AddMinutes(domain.SlotStepMinutes)
		if err != nil {
			// Сетка упёрлась в полночь: слот за пределами суток невалиден
			break
		}

		eligible := true
		if today {
			slotStart, err := cur.OnDate(day)
			if err != nil {
				return nil, err
			}
			eligible = slotStart.After(threshold)
		}

		booked := false
		blocked := false
		for _, booking := range bookings {
			if !booking.IsActive() {
				continue
			}

			if domain.Overlaps(cur, slotEnd, booking.StartTime, booking.EndTime) {
				booked = true
				blocked = true
				continue
			}

			padded, err := domain.OverlapsPadded(cur, slotEnd, booking.StartTime, booking.EndTime, settings.BufferTimeMinutes)
			if err != nil {
				return nil, err
			}
			if padded {
				blocked = true
			}
		}

		slots = append(slots, domain.TimeSlot{
			ID:          domain.SlotID(day, cur),
			Date:        day,
			StartTime:   cur,
			EndTime:     slotEnd,
			IsAvailable: eligible && !blocked,
			IsBooked:    booked,
		})

		cur = slotEnd
	}

	return slots, nil
}

// dateBeyondLimit проверяет, что дата превышает горизонт бронирования
func dateBeyondLimit(date, now time.Time, maxAdvanceBookingDays int) bool {
	if maxAdvanceBookingDays <= 0 {
		return false
	}
	maxDate := domain.StartOfDay(now).AddDate(0, 0, maxAdvanceBookingDays)
	return domain.StartOfDay(date).After(maxDate)
}
