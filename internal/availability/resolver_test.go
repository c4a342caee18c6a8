package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/ptr"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestResolver() *Resolver {
	return NewResolver(nopLogger{})
}

// thatMonday 2025-10-13 is a Monday, used across scenarios
const (
	today      = types.DateString("2025-10-10")
	thatMonday = types.DateString("2025-10-13")
)

func coveringWindow(staffID string) domain.StaffAvailabilityWindow {
	return domain.StaffAvailabilityWindow{
		ID:      1,
		StaffID: staffID,
		From:    "2025-10-01",
		To:      "2025-10-31",
	}
}

func TestIsDateOfferable(t *testing.T) {
	r := newTestResolver()

	tests := []struct {
		name          string
		date          types.DateString
		globalRange   *domain.AvailableDateRange
		weekdayClosed map[time.Weekday]bool
		want          bool
	}{
		{
			name: "date strictly in the past",
			date: "2025-10-09",
			want: false,
		},
		{
			name: "today is offerable",
			date: today,
			want: true,
		},
		{
			name:        "two days before range start",
			date:        "2025-10-13",
			globalRange: &domain.AvailableDateRange{From: "2025-10-15", To: "2025-11-15"},
			want:        false,
		},
		{
			name:        "after range end",
			date:        "2025-11-16",
			globalRange: &domain.AvailableDateRange{From: "2025-10-15", To: "2025-11-15"},
			want:        false,
		},
		{
			name:        "range boundaries are inclusive",
			date:        "2025-10-15",
			globalRange: &domain.AvailableDateRange{From: "2025-10-15", To: "2025-11-15"},
			want:        true,
		},
		{
			name:          "outside range regardless of weekday flags",
			date:          "2025-10-13",
			globalRange:   &domain.AvailableDateRange{From: "2025-10-15", To: "2025-11-15"},
			weekdayClosed: map[time.Weekday]bool{time.Monday: false},
			want:          false,
		},
		{
			name:          "business closed on that weekday",
			date:          thatMonday,
			weekdayClosed: map[time.Weekday]bool{time.Monday: true},
			want:          false,
		},
		{
			name: "no range and open weekday",
			date: thatMonday,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.IsDateOfferable(tt.date, today, tt.globalRange, tt.weekdayClosed)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestComputeDayWindow(t *testing.T) {
	r := newTestResolver()
	fallback := DayWindow{StartHour: domain.DefaultOpenHour, EndHour: domain.DefaultCloseHour}

	workingHours := map[time.Weekday]domain.WorkingHours{
		time.Monday: {DayOfWeek: time.Monday, StartHour: 10, EndHour: 18},
	}

	t.Run("special day wins over working hours", func(t *testing.T) {
		specialDays := map[types.DateString]domain.SpecialDay{
			thatMonday: {Date: thatMonday, OpeningHour: 12, ClosingHour: 16},
		}
		window := r.ComputeDayWindow(thatMonday, workingHours, specialDays, fallback)
		assert.Equal(t, DayWindow{StartHour: 12, EndHour: 16}, window)
	})

	t.Run("working hours for the weekday", func(t *testing.T) {
		window := r.ComputeDayWindow(thatMonday, workingHours, nil, fallback)
		assert.Equal(t, DayWindow{StartHour: 10, EndHour: 18}, window)
	})

	t.Run("fallback when nothing configured", func(t *testing.T) {
		// 2025-10-14 is a Tuesday, no working hours entry
		window := r.ComputeDayWindow("2025-10-14", workingHours, nil, fallback)
		assert.Equal(t, fallback, window)
	})
}

func TestIsSlotAvailable(t *testing.T) {
	r := newTestResolver()

	t.Run("zero date is trivially available", func(t *testing.T) {
		snap := &Snapshot{Today: today}
		assert.True(t, r.IsSlotAvailable("", "10:00", snap))
	})

	t.Run("empty roster blocks every slot", func(t *testing.T) {
		snap := &Snapshot{Today: today}
		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
	})

	t.Run("no covering availability window fails closed", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"alice"},
		}
		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
	})

	t.Run("idempotent over unchanged snapshot", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"alice"},
			Windows:     []domain.StaffAvailabilityWindow{coveringWindow("alice")},
		}
		first := r.IsSlotAvailable(thatMonday, "10:00", snap)
		second := r.IsSlotAvailable(thatMonday, "10:00", snap)
		assert.True(t, first)
		assert.Equal(t, first, second)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"alice"},
			Windows:     []domain.StaffAvailabilityWindow{coveringWindow("alice")},
			Reservations: []*domain.Reservation{
				{ID: 7, StaffID: ptr.Ptr("alice"), Date: thatMonday, TimeSlot: "10:00", Status: domain.StatusCancelled},
			},
		}
		assert.True(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
	})

	t.Run("pending reservation blocks the exact slot only", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"alice"},
			Windows:     []domain.StaffAvailabilityWindow{coveringWindow("alice")},
			Reservations: []*domain.Reservation{
				{ID: 7, StaffID: ptr.Ptr("alice"), Date: thatMonday, TimeSlot: "10:00", Status: domain.StatusPending},
			},
		}
		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
		assert.True(t, r.IsSlotAvailable(thatMonday, "11:00", snap))
	})
}

// Scenario from the working design: Monday 10-18, roster [A,B], A has a
// weekly day off on Monday, B is fully available.
func mondayScenario() *Snapshot {
	return &Snapshot{
		Today:       today,
		GlobalRange: &domain.AvailableDateRange{From: "2025-10-01", To: "2025-10-31"},
		WorkingHours: map[time.Weekday]domain.WorkingHours{
			time.Monday: {DayOfWeek: time.Monday, StartHour: 10, EndHour: 18},
		},
		StaffRoster: []string{"a.staff", "b.staff"},
		WeeklyDaysOff: []domain.StaffWeeklyDayOff{
			{StaffID: "a.staff", DayOfWeek: time.Monday, Available: false},
		},
		Windows: []domain.StaffAvailabilityWindow{
			{ID: 1, StaffID: "a.staff", From: "2025-10-01", To: "2025-10-31"},
			{ID: 2, StaffID: "b.staff", From: "2025-10-01", To: "2025-10-31"},
		},
	}
}

func TestSelectStaffForSlot(t *testing.T) {
	r := newTestResolver()

	t.Run("weekly day off excludes staff, B is selected", func(t *testing.T) {
		snap := mondayScenario()

		assert.True(t, r.IsSlotAvailable(thatMonday, "10:00", snap))

		staffID, ok := r.SelectStaffForSlot(thatMonday, "10:00", snap)
		require.True(t, ok)
		assert.Equal(t, "b.staff", staffID)
	})

	t.Run("fully booked slot selects nobody", func(t *testing.T) {
		snap := mondayScenario()
		snap.Reservations = []*domain.Reservation{
			{ID: 1, StaffID: ptr.Ptr("b.staff"), Date: thatMonday, TimeSlot: "10:00", Status: domain.StatusConfirmed},
		}

		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))

		_, ok := r.SelectStaffForSlot(thatMonday, "10:00", snap)
		assert.False(t, ok)
	})

	t.Run("roster of one with weekly day off yields nobody", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"a.staff"},
			WeeklyDaysOff: []domain.StaffWeeklyDayOff{
				{StaffID: "a.staff", DayOfWeek: time.Monday, Available: false},
			},
			Windows: []domain.StaffAvailabilityWindow{coveringWindow("a.staff")},
		}
		_, ok := r.SelectStaffForSlot(thatMonday, "14:00", snap)
		assert.False(t, ok)
	})

	t.Run("ad-hoc day off excludes staff for that date only", func(t *testing.T) {
		snap := mondayScenario()
		snap.DaysOff = []domain.StaffDayOff{
			{ID: 1, StaffID: "b.staff", Date: thatMonday},
		}

		_, ok := r.SelectStaffForSlot(thatMonday, "10:00", snap)
		assert.False(t, ok)

		// 2025-10-14 is a Tuesday: A has no Monday conflict, B has no day off
		staffID, ok := r.SelectStaffForSlot("2025-10-14", "10:00", snap)
		require.True(t, ok)
		assert.Equal(t, "a.staff", staffID)
	})

	t.Run("stable ascending order", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"zoe", "bob", "ann"},
			Windows: []domain.StaffAvailabilityWindow{
				{ID: 1, StaffID: "zoe", From: "2025-10-01", To: "2025-10-31"},
				{ID: 2, StaffID: "bob", From: "2025-10-01", To: "2025-10-31"},
				{ID: 3, StaffID: "ann", From: "2025-10-01", To: "2025-10-31"},
			},
		}
		staffID, ok := r.SelectStaffForSlot(thatMonday, "10:00", snap)
		require.True(t, ok)
		assert.Equal(t, "ann", staffID)
	})
}

func TestCancellationFreesSlot(t *testing.T) {
	r := newTestResolver()

	snap := &Snapshot{
		Today:       today,
		StaffRoster: []string{"alice"},
		Windows:     []domain.StaffAvailabilityWindow{coveringWindow("alice")},
		Reservations: []*domain.Reservation{
			{ID: 1, StaffID: ptr.Ptr("alice"), Date: thatMonday, TimeSlot: "10:00", Status: domain.StatusConfirmed},
		},
	}

	assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))

	// Отмена: статус cancelled, сотрудник снят с бронирования
	snap.Reservations[0].Status = domain.StatusCancelled
	snap.Reservations[0].StaffID = nil

	assert.True(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
}

func TestDaySlots(t *testing.T) {
	r := newTestResolver()

	snap := mondayScenario()
	snap.Reservations = []*domain.Reservation{
		{ID: 1, StaffID: ptr.Ptr("b.staff"), Date: thatMonday, TimeSlot: "12:00", Status: domain.StatusConfirmed},
	}

	slots := r.DaySlots(thatMonday, DayWindow{StartHour: 10, EndHour: 18}, snap)
	require.Len(t, slots, 8)

	byTime := make(map[types.TimeString]bool, len(slots))
	for _, slot := range slots {
		byTime[slot.Time] = slot.Unavailable
	}

	// A не работает по понедельникам, поэтому занятость B блокирует слот целиком
	assert.True(t, byTime["12:00"])
	assert.False(t, byTime["10:00"])
	assert.False(t, byTime["17:00"])
	assert.NotContains(t, byTime, types.TimeString("18:00"))
}

func TestDaySlotsInvertedWindow(t *testing.T) {
	r := newTestResolver()
	snap := mondayScenario()

	// закрытие раньше открытия: слотов нет, паники тоже
	slots := r.DaySlots(thatMonday, DayWindow{StartHour: 16, EndHour: 12}, snap)
	require.NotNil(t, slots)
	assert.Empty(t, slots)

	slots = r.DaySlots(thatMonday, DayWindow{StartHour: 10, EndHour: 10}, snap)
	require.NotNil(t, slots)
	assert.Empty(t, slots)
}

func TestMalformedRecordsFailClosed(t *testing.T) {
	r := newTestResolver()

	t.Run("window without bounds is skipped", func(t *testing.T) {
		snap := &Snapshot{
			Today:       today,
			StaffRoster: []string{"alice"},
			Windows: []domain.StaffAvailabilityWindow{
				{ID: 1, StaffID: "alice"}, // нет From/To
			},
		}
		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
	})

	t.Run("reservation without time blocks its staff", func(t *testing.T) {
		snap := mondayScenario()
		snap.Reservations = []*domain.Reservation{
			{ID: 1, StaffID: ptr.Ptr("b.staff"), Date: thatMonday, Status: domain.StatusConfirmed},
		}
		assert.False(t, r.IsSlotAvailable(thatMonday, "10:00", snap))
	})
}
