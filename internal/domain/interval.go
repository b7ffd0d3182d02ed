package domain

import (
	"github.com/m04kA/SMC-SchedulingService/pkg/types"
)

// Overlaps сообщает, пересекаются ли интервалы [aStart, aEnd) и [bStart, bEnd).
// Строгие неравенства: граничащие интервалы пересечением НЕ считаются.
//
// Примеры:
// - Слот 11:30-12:00, бронирование 11:20-11:40 → ЕСТЬ пересечение
// - Слот 11:30-12:00, бронирование 11:00-11:30 → НЕТ пересечения (граничат)
// - Слот 11:30-12:00, бронирование 12:00-12:30 → НЕТ пересечения (граничат)
//
// Единственный предикат пересечения в сервисе: генерация слотов и проверка
// конфликтов при бронировании обязаны использовать его, а не дублировать
// логику на месте.
func Overlaps(aStart, aEnd, bStart, bEnd types.TimeString) bool {
	return bStart.IsBefore(aEnd) && bEnd.IsAfter(aStart)
}

// OverlapsPadded как Overlaps, но интервал b расширен на padMinutes с обеих
// сторон (буферное время между встречами). Паддинг ограничен границами суток.
func OverlapsPadded(aStart, aEnd, bStart, bEnd types.TimeString, padMinutes int) (bool, error) {
	if padMinutes <= 0 {
		return Overlaps(aStart, aEnd, bStart, bEnd), nil
	}

	as, err := aStart.Minutes()
	if err != nil {
		return false, err
	}
	ae, err := aEnd.Minutes()
	if err != nil {
		return false, err
	}
	bs, err := bStart.Minutes()
	if err != nil {
		return false, err
	}
	be, err := bEnd.Minutes()
	if err != nil {
		return false, err
	}

	bs -= padMinutes
	if bs < 0 {
		bs = 0
	}
	be += padMinutes
	if be > 24*60 {
		be = 24 * 60
	}

	return bs < ae && be > as, nil
}
