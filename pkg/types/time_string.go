package types

import (
	"errors"
	"fmt"
	"time"
)

const (
	timeLayout    = "15:04"
	minutesPerDay = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrCrossesMidnight возвращается, когда арифметика выходит за пределы суток
	ErrCrossesMidnight = errors.New("types: time crosses midnight")
)

// TimeString время суток в формате "HH:MM" (wall-clock, без даты и таймзоны).
// Дополнительно допускает значение "24:00" (конец суток), используется
// только как время окончания интервала.
type TimeString string

// EndOfDay конец суток
const EndOfDay TimeString = "24:00"

// NewTimeString создает TimeString из time.Time (секунды отбрасываются)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" с валидацией
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала суток
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrCrossesMidnight, m)
	}
	if m == minutesPerDay {
		return EndOfDay, nil
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero сообщает, что значение не задано
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет формат "HH:MM" (или "24:00")
func (t TimeString) Validate() error {
	_, err := t.Minutes()
	return err
}

// Minutes возвращает количество минут с начала суток
func (t TimeString) Minutes() (int, error) {
	if t == EndOfDay {
		return minutesPerDay, nil
	}
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через m минут.
// Выход за пределы суток (позже "24:00") возвращает ErrCrossesMidnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(current + m)
}

// IsBefore сообщает, что t строго раньше other.
// Формат "HH:MM" с ведущими нулями сравнивается лексикографически корректно.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter сообщает, что t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// OnDate возвращает полноценный момент времени: дата date, время t, локация date
func (t TimeString) OnDate(date time.Time) (time.Time, error) {
	m, err := t.Minutes()
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()).
		Add(time.Duration(m) * time.Minute), nil
}
