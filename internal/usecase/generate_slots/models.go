package generate_slots

import (
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/domain"
)

// Request модель запроса на генерацию слотов
type Request struct {
	Date time.Time // Дата, на которую генерируются слоты (без времени)
}

// Response модель ответа со сгенерированной сеткой слотов
type Response struct {
	Date  time.Time         // Дата, на которую сгенерированы слоты
	Slots []domain.TimeSlot // Полная сетка слотов дня (включая занятые)
}
