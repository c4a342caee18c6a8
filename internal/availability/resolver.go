// Package availability движок разрешения доступности: чистые решающие
// функции над снимком данных расписания. Единственная авторитетная
// реализация проверок, общая для отрисовки слотов и создания бронирования.
package availability

import (
	"fmt"
	"sort"
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Resolver решает доступность слотов и выбирает сотрудника для бронирования.
// Не имеет состояния: все методы детерминированы над переданным Snapshot.
type Resolver struct {
	log Logger
}

// NewResolver создает резолвер
func NewResolver(log Logger) *Resolver {
	return &Resolver{log: log}
}

// IsDateOfferable проверяет, может ли дата вообще предлагаться к записи:
// дата не в прошлом (по календарному дню), внутри глобального диапазона
// (если он задан, границы включительно) и день недели не закрыт для бизнеса.
// Тотальная функция над корректными датами, без защиты от мусора на входе.
func (r *Resolver) IsDateOfferable(
	date types.DateString,
	today types.DateString,
	globalRange *domain.AvailableDateRange,
	weekdayClosed map[time.Weekday]bool,
) bool {
	if date.Before(today) {
		return false
	}

	if globalRange != nil && !globalRange.Contains(date) {
		return false
	}

	weekday, err := date.Weekday()
	if err != nil {
		return false
	}
	return !weekdayClosed[weekday]
}

// ComputeDayWindow возвращает окно работы на дату.
// SpecialDay для точной даты всегда побеждает недельное расписание,
// независимо от того, что было задано позже. Если нет ни того, ни другого,
// возвращается fallback-окно из конфигурации.
func (r *Resolver) ComputeDayWindow(
	date types.DateString,
	workingHours map[time.Weekday]domain.WorkingHours,
	specialDays map[types.DateString]domain.SpecialDay,
	fallback DayWindow,
) DayWindow {
	if special, ok := specialDays[date]; ok {
		return DayWindow{StartHour: special.OpeningHour, EndHour: special.ClosingHour}
	}

	weekday, err := date.Weekday()
	if err != nil {
		return fallback
	}

	if hours, ok := workingHours[weekday]; ok {
		return DayWindow{StartHour: hours.StartHour, EndHour: hours.EndHour}
	}
	return fallback
}

// IsSlotAvailable проверяет доступность слота (date, slot).
// Семантика "хотя бы один": слот доступен, если хотя бы один сотрудник
// проходит все индивидуальные проверки; блокируется только единогласной
// недоступностью. Пустой ростер означает недоступность любого слота.
// Незаданная дата трактуется как доступность (дата ещё не выбрана в UI).
func (r *Resolver) IsSlotAvailable(date types.DateString, slot types.TimeString, snap *Snapshot) bool {
	if date.IsZero() {
		return true
	}

	for _, staffID := range snap.StaffRoster {
		if r.staffAvailable(staffID, date, slot, snap) {
			return true
		}
	}
	return false
}

// SelectStaffForSlot детерминированно выбирает сотрудника для бронирования:
// проход по ростеру в стабильном порядке (по возрастанию идентификатора),
// возвращается первый, проходящий все четыре индивидуальные проверки.
// ok=false означает, что слот некому обслужить (для вызывающего это
// жёсткий отказ бронирования, вероятно гонка с параллельной записью).
func (r *Resolver) SelectStaffForSlot(date types.DateString, slot types.TimeString, snap *Snapshot) (string, bool) {
	roster := make([]string, len(snap.StaffRoster))
	copy(roster, snap.StaffRoster)
	sort.Strings(roster)

	for _, staffID := range roster {
		if r.staffAvailable(staffID, date, slot, snap) {
			return staffID, true
		}
	}
	return "", false
}

// DaySlots строит почасовую ленту слотов на дату для отрисовки:
// каждый слот окна работы с флагом недоступности.
// Вывернутое окно (конец не позже начала) дает пустую ленту,
// а не панику на отрицательной емкости среза.
func (r *Resolver) DaySlots(date types.DateString, window DayWindow, snap *Snapshot) []SlotAvailability {
	if window.EndHour <= window.StartHour {
		r.warnf("DaySlots: inverted day window %d..%d for %s, no slots rendered", window.StartHour, window.EndHour, date)
		return []SlotAvailability{}
	}

	slots := make([]SlotAvailability, 0, window.EndHour-window.StartHour)
	for hour := window.StartHour; hour < window.EndHour; hour++ {
		slot := hourToSlot(hour)
		slots = append(slots, SlotAvailability{
			Time:        slot,
			Unavailable: !r.IsSlotAvailable(date, slot, snap),
		})
	}
	return slots
}

// staffAvailable индивидуальная доступность сотрудника для (date, slot).
// Все четыре условия обязательны:
//  a. нет еженедельного выходного (Available=false) на день недели даты;
//  b. нет разового выходного на точную дату;
//  c. есть покрывающий период назначаемости (отсутствие означает "нет");
//  d. нет активного бронирования на (сотрудник, дата, слот).
// Некорректные записи логируются и трактуются как недоступность
// только этого сотрудника (fail closed), чтобы одна битая запись
// не блокировала отрисовку всего дня.
func (r *Resolver) staffAvailable(staffID string, date types.DateString, slot types.TimeString, snap *Snapshot) bool {
	weekday, err := date.Weekday()
	if err != nil {
		r.warnf("staffAvailable: malformed date %q for staff=%s: %v", date, staffID, err)
		return false
	}

	for _, dayOff := range snap.WeeklyDaysOff {
		if dayOff.StaffID == staffID && dayOff.DayOfWeek == weekday && !dayOff.Available {
			return false
		}
	}

	for _, dayOff := range snap.DaysOff {
		if dayOff.StaffID == staffID && dayOff.Date.Equal(date) {
			return false
		}
	}

	covered := false
	for _, window := range snap.Windows {
		if window.StaffID != staffID {
			continue
		}
		if window.From.IsZero() || window.To.IsZero() {
			r.warnf("staffAvailable: malformed availability window id=%d for staff=%s", window.ID, staffID)
			continue
		}
		if window.Covers(date) {
			covered = true
			break
		}
	}
	if !covered {
		return false
	}

	for _, reservation := range snap.Reservations {
		if !reservation.IsActive() || !reservation.HasAssignedStaff() {
			continue
		}
		if *reservation.StaffID != staffID || !reservation.Date.Equal(date) {
			continue
		}
		if reservation.TimeSlot.IsZero() {
			// Битое бронирование без времени: считаем конфликтом, чтобы не
			// предложить слот, который на самом деле может быть занят
			r.warnf("staffAvailable: reservation id=%d has no time slot, treating staff=%s as busy", reservation.ID, staffID)
			return false
		}
		if reservation.TimeSlot == slot {
			return false
		}
	}

	return true
}

func (r *Resolver) warnf(format string, v ...interface{}) {
	if r.log != nil {
		r.log.Warn(format, v...)
	}
}

func hourToSlot(hour int) types.TimeString {
	return types.TimeString(fmt.Sprintf("%02d:00", hour))
}
