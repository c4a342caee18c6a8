package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ErrInvalidDateString возвращается при некорректном формате даты
var ErrInvalidDateString = errors.New("invalid date string format")

// DateString календарная дата в формате YYYY-MM-DD без времени и часового пояса.
// Все сравнения дат в сервисе идут через этот тип, чтобы исключить
// ошибки сравнения date-with-time против date-only значений.
type DateString string

// NewDateString создает DateString из time.Time (отбрасывает время)
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString парсит строку вида "2025-10-15" в DateString
func NewDateStringFromString(s string) (DateString, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateString, s)
	}
	return DateString(t.Format(dateLayout)), nil
}

// String возвращает дату в формате "YYYY-MM-DD"
func (d DateString) String() string {
	return string(d)
}

// IsZero сообщает, что дата не задана
func (d DateString) IsZero() bool {
	return d == ""
}

// Validate проверяет корректность формата даты
func (d DateString) Validate() error {
	_, err := d.Time()
	return err
}

// Time возвращает дату как time.Time в UTC с нулевым временем
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Weekday возвращает день недели даты
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return time.Sunday, err
	}
	return t.Weekday(), nil
}

// Before строго раньше other. Формат YYYY-MM-DD сортируется лексикографически.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After строго позже other
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}

// Equal та же календарная дата
func (d DateString) Equal(other DateString) bool {
	return string(d) == string(other)
}

// AddDays возвращает дату, сдвинутую на days дней
func (d DateString) AddDays(days int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, days)), nil
}

// Value реализует driver.Valuer для записи в БД
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	t, err := d.Time()
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Scan реализует sql.Scanner для чтения из БД
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case []byte:
		return d.scanString(string(v))
	case string:
		return d.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidDateString, src)
	}
}

func (d *DateString) scanString(s string) error {
	if len(s) > len(dateLayout) {
		s = s[:len(dateLayout)]
	}
	parsed, err := NewDateStringFromString(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
