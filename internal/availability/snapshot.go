package availability

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Snapshot снимок данных расписания на момент запроса.
// Резолвер не ходит в хранилище сам: вызывающий собирает Snapshot
// непосредственно перед отрисовкой слотов и перед бронированием,
// чтобы минимизировать устаревание данных.
type Snapshot struct {
	// Today текущая календарная дата (для проверки "дата в прошлом")
	Today types.DateString

	// GlobalRange глобальная граница записи; nil означает без ограничений
	GlobalRange *domain.AvailableDateRange

	// WeekdayClosed бизнес закрыт в этот день недели целиком
	WeekdayClosed map[time.Weekday]bool

	// WorkingHours окно работы по дням недели
	WorkingHours map[time.Weekday]domain.WorkingHours

	// SpecialDays точечные переопределения часов работы по датам
	SpecialDays map[types.DateString]domain.SpecialDay

	// StaffRoster множество всех известных сотрудников
	StaffRoster []string

	// WeeklyDaysOff еженедельные выходные сотрудников (важны записи с Available=false)
	WeeklyDaysOff []domain.StaffWeeklyDayOff

	// DaysOff разовые выходные сотрудников
	DaysOff []domain.StaffDayOff

	// Windows периоды, в которые сотрудник вообще назначаем
	Windows []domain.StaffAvailabilityWindow

	// Reservations существующие бронирования (активные блокируют слоты)
	Reservations []*domain.Reservation
}

// DayWindow окно работы на конкретную дату в целых часах
type DayWindow struct {
	StartHour int
	EndHour   int
}

// SlotAvailability флаг доступности одного слота для отрисовки
type SlotAvailability struct {
	Time        types.TimeString
	Unavailable bool
}
