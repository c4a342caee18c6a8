package get_day_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeSnapshotProvider struct {
	snapshot *availability.Snapshot
	err      error
}

func (f *fakeSnapshotProvider) BuildSnapshot(context.Context, types.DateString) (*availability.Snapshot, error) {
	return f.snapshot, f.err
}

const testDate = types.DateString("2025-10-13") // понедельник

func openSnapshot() *availability.Snapshot {
	return &availability.Snapshot{
		Today:         "2025-10-10",
		WeekdayClosed: map[time.Weekday]bool{},
		WorkingHours: map[time.Weekday]domain.WorkingHours{
			time.Monday: {DayOfWeek: time.Monday, StartHour: 10, EndHour: 14},
		},
		SpecialDays: map[types.DateString]domain.SpecialDay{},
		StaffRoster: []string{"ann"},
		Windows: []domain.StaffAvailabilityWindow{
			{ID: 1, StaffID: "ann", From: "2025-01-01", To: "2025-12-31"},
		},
	}
}

func newTestUseCase(snaps *fakeSnapshotProvider) *UseCase {
	return NewUseCase(
		snaps,
		availability.NewResolver(nopLogger{}),
		availability.DayWindow{StartHour: 8, EndHour: 23},
		availability.DayWindow{StartHour: 9, EndHour: 21},
		nopLogger{},
	)
}

func TestExecute_WeekdayWindow(t *testing.T) {
	uc := newTestUseCase(&fakeSnapshotProvider{snapshot: openSnapshot()})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourcePublic})
	require.NoError(t, err)

	assert.True(t, resp.Offerable)
	assert.Equal(t, 10, resp.StartHour)
	assert.Equal(t, 14, resp.EndHour)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, types.TimeString("10:00"), resp.Slots[0].Time)
	assert.Equal(t, types.TimeString("13:00"), resp.Slots[3].Time)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Unavailable)
	}
}

func TestExecute_BookedSlotMarkedUnavailable(t *testing.T) {
	snapshot := openSnapshot()
	staff := "ann"
	snapshot.Reservations = []*domain.Reservation{
		{ID: 1, StaffID: &staff, Date: testDate, TimeSlot: "12:00", Status: domain.StatusConfirmed},
	}
	uc := newTestUseCase(&fakeSnapshotProvider{snapshot: snapshot})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourcePublic})
	require.NoError(t, err)

	byTime := map[types.TimeString]bool{}
	for _, slot := range resp.Slots {
		byTime[slot.Time] = slot.Unavailable
	}
	assert.True(t, byTime["12:00"])
	assert.False(t, byTime["11:00"])
}

func TestExecute_FallbackWindowDependsOnSource(t *testing.T) {
	snapshot := openSnapshot()
	snapshot.WorkingHours = map[time.Weekday]domain.WorkingHours{}
	snaps := &fakeSnapshotProvider{snapshot: snapshot}
	uc := newTestUseCase(snaps)

	public, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourcePublic})
	require.NoError(t, err)
	assert.Equal(t, 8, public.StartHour)
	assert.Equal(t, 23, public.EndHour)

	dashboard, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourceDashboard})
	require.NoError(t, err)
	assert.Equal(t, 9, dashboard.StartHour)
	assert.Equal(t, 21, dashboard.EndHour)
}

func TestExecute_NotOfferableDateReturnsEmptyBand(t *testing.T) {
	snapshot := openSnapshot()
	snapshot.WeekdayClosed[time.Monday] = true
	uc := newTestUseCase(&fakeSnapshotProvider{snapshot: snapshot})

	resp, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourcePublic})
	require.NoError(t, err)

	assert.False(t, resp.Offerable)
	assert.Empty(t, resp.Slots)
}

func TestExecute_SnapshotFailure(t *testing.T) {
	uc := newTestUseCase(&fakeSnapshotProvider{err: assert.AnError})

	_, err := uc.Execute(context.Background(), &Request{Date: testDate, Source: domain.SourcePublic})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeSnapshotProvider{snapshot: openSnapshot()})

	_, err := uc.Execute(context.Background(), &Request{Date: "", Source: domain.SourcePublic})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{Date: testDate, Source: "kiosk"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
