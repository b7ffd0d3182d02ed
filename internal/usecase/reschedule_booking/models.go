package reschedule_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на перенос бронирования.
// Длительность встречи не меняется: новый интервал вычисляется из исходной.
type Request struct {
	BookingID string           // ID переносимого бронирования
	Date      time.Time        // Новая дата (без времени)
	StartTime types.TimeString // Новое время начала (например, "10:00")
}

// Response модель ответа с перенесённым бронированием
type Response struct {
	ID              string           // ID бронирования
	Name            string           // Имя посетителя
	Email           string           // Email
	Phone           *string          // Телефон
	Purpose         string           // Цель встречи
	BookingDate     time.Time        // Новая дата бронирования
	StartTime       types.TimeString // Новое время начала
	EndTime         types.TimeString // Новое время окончания
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // Таймзона посетителя
	Status          string           // Статус бронирования
	MeetingLink     *string          // Ссылка на видеовстречу

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
