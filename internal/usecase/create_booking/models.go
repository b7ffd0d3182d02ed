package create_booking

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	Name            string  `validate:"required,max=200"`        // Имя посетителя
	Email           string  `validate:"required,email"`          // Email для подтверждения
	Phone           *string `validate:"omitempty,e164"`          // Телефон (опционально)
	Purpose         string  `validate:"required,max=2000"`       // Цель встречи
	DurationMinutes int     `validate:"required"`                // Длительность встречи в минутах
	Timezone        string  `validate:"required,max=100"`        // Таймзона посетителя (IANA)
	Date            time.Time                                    // Дата бронирования (без времени)
	StartTime       types.TimeString                             // Время начала слота (например, "10:00")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID              string           // ID созданного бронирования
	Name            string           // Имя посетителя
	Email           string           // Email
	Phone           *string          // Телефон
	Purpose         string           // Цель встречи
	BookingDate     time.Time        // Дата бронирования
	StartTime       types.TimeString // Время начала
	EndTime         types.TimeString // Время окончания
	DurationMinutes int              // Длительность в минутах
	Timezone        string           // Таймзона посетителя
	Status          string           // Статус бронирования
	MeetingLink     *string          // Ссылка на видеовстречу

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
