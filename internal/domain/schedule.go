package domain

import (
	"time"

	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// WorkingHours defines the default opening window for one weekday,
// business-wide. Closed marks the whole weekday as non-bookable.
type WorkingHours struct {
	DayOfWeek time.Weekday
	StartHour int // [0,23]
	EndHour   int // [0,23]
	Closed    bool
}

// SpecialDay overrides WorkingHours for one specific calendar date
// (holidays, custom opening hours). The override is exact, never merged.
type SpecialDay struct {
	Date        types.DateString
	OpeningHour int
	ClosingHour int
}

// AvailableDateRange is the global booking bound. No date outside
// [From, To] (inclusive) is ever offerable, independent of other rules.
type AvailableDateRange struct {
	From types.DateString
	To   types.DateString
}

// Contains reports whether date falls within the range, inclusive on both ends
func (r *AvailableDateRange) Contains(date types.DateString) bool {
	return !date.Before(r.From) && !date.After(r.To)
}

// StaffWeeklyDayOff recurring weekly unavailability for one staff member.
// Only entries with Available=false affect the resolver.
type StaffWeeklyDayOff struct {
	StaffID   string
	DayOfWeek time.Weekday
	Available bool
}

// StaffDayOff one-off exception day for one staff member
type StaffDayOff struct {
	ID      int64
	StaffID string
	Date    types.DateString
}

// StaffAvailabilityWindow bounded period during which a staff member is
// assignable at all. No covering window means never assignable (fail closed).
type StaffAvailabilityWindow struct {
	ID      int64
	StaffID string
	From    types.DateString
	To      types.DateString
}

// Covers reports whether date falls within the window, inclusive
func (w *StaffAvailabilityWindow) Covers(date types.DateString) bool {
	return !date.Before(w.From) && !date.After(w.To)
}

// Service бронируемая услуга из каталога
type Service struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}
