package schedule

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/internal/integrations/identity"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

type fakeScheduleRepo struct {
	workingHours []domain.WorkingHours
	specialDays  []domain.SpecialDay
	globalRange  *domain.AvailableDateRange
	weeklyOff    []domain.StaffWeeklyDayOff
	daysOff      []domain.StaffDayOff
	windows      []domain.StaffAvailabilityWindow

	workingHoursErr error

	upsertedHours *domain.WorkingHours
	daysOffAsOf   types.DateString
}

func (f *fakeScheduleRepo) GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error) {
	if f.workingHoursErr != nil {
		return nil, f.workingHoursErr
	}
	return f.workingHours, nil
}

func (f *fakeScheduleRepo) UpsertWorkingHours(ctx context.Context, hours domain.WorkingHours) error {
	f.upsertedHours = &hours
	return nil
}

func (f *fakeScheduleRepo) GetSpecialDays(ctx context.Context) ([]domain.SpecialDay, error) {
	return f.specialDays, nil
}

func (f *fakeScheduleRepo) UpsertSpecialDay(ctx context.Context, day domain.SpecialDay) error {
	return nil
}

func (f *fakeScheduleRepo) DeleteSpecialDay(ctx context.Context, date types.DateString) error {
	return nil
}

func (f *fakeScheduleRepo) GetAvailableDateRange(ctx context.Context) (*domain.AvailableDateRange, error) {
	return f.globalRange, nil
}

func (f *fakeScheduleRepo) ReplaceAvailableDateRange(ctx context.Context, dateRange domain.AvailableDateRange) error {
	return nil
}

func (f *fakeScheduleRepo) GetStaffWeeklyDaysOff(ctx context.Context) ([]domain.StaffWeeklyDayOff, error) {
	return f.weeklyOff, nil
}

func (f *fakeScheduleRepo) GetStaffWeeklyDaysOffByStaff(ctx context.Context, staffID string) ([]domain.StaffWeeklyDayOff, error) {
	return f.weeklyOff, nil
}

func (f *fakeScheduleRepo) UpsertStaffWeeklyDayOff(ctx context.Context, dayOff domain.StaffWeeklyDayOff) error {
	return nil
}

func (f *fakeScheduleRepo) DeleteStaffWeeklyDayOff(ctx context.Context, staffID string, dayOfWeek time.Weekday) error {
	return nil
}

func (f *fakeScheduleRepo) GetStaffDaysOff(ctx context.Context, asOf types.DateString) ([]domain.StaffDayOff, error) {
	f.daysOffAsOf = asOf
	return f.daysOff, nil
}

func (f *fakeScheduleRepo) CreateStaffDayOff(ctx context.Context, dayOff *domain.StaffDayOff) (*domain.StaffDayOff, error) {
	dayOff.ID = 1
	return dayOff, nil
}

func (f *fakeScheduleRepo) DeleteStaffDayOff(ctx context.Context, id int64) error {
	return nil
}

func (f *fakeScheduleRepo) GetStaffAvailabilityWindows(ctx context.Context) ([]domain.StaffAvailabilityWindow, error) {
	return f.windows, nil
}

func (f *fakeScheduleRepo) GetStaffAvailabilityWindow(ctx context.Context, staffID string) (*domain.StaffAvailabilityWindow, error) {
	return nil, ErrNotFound
}

func (f *fakeScheduleRepo) UpsertStaffAvailabilityWindow(ctx context.Context, window domain.StaffAvailabilityWindow) error {
	return nil
}

func (f *fakeScheduleRepo) DeleteStaffAvailabilityWindow(ctx context.Context, staffID string) error {
	return nil
}

type fakeReservationRepo struct {
	reservations []*domain.Reservation
	calledDate   types.DateString
	called       bool
}

func (f *fakeReservationRepo) ListActiveByDate(ctx context.Context, date types.DateString) ([]*domain.Reservation, error) {
	f.called = true
	f.calledDate = date
	return f.reservations, nil
}

type fakeIdentityClient struct {
	roster []string
	staff  []identity.StaffMember
	err    error
}

func (f *fakeIdentityClient) ListStaff(ctx context.Context) ([]identity.StaffMember, error) {
	return f.staff, f.err
}

func (f *fakeIdentityClient) ListStaffIDs(ctx context.Context) ([]string, error) {
	return f.roster, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo *fakeScheduleRepo, reservations *fakeReservationRepo, identity *fakeIdentityClient) *Service {
	svc := NewService(repo, reservations, identity, nopLogger{})
	svc.timeProvider = fixedTime{now: time.Date(2025, 10, 10, 9, 0, 0, 0, time.UTC)}
	return svc
}

func TestService_BuildSnapshot(t *testing.T) {
	t.Run("assembles all schedule facts into one snapshot", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			workingHours: []domain.WorkingHours{
				{DayOfWeek: time.Monday, StartHour: 10, EndHour: 19},
				{DayOfWeek: time.Sunday, Closed: true},
			},
			specialDays: []domain.SpecialDay{
				{Date: types.DateString("2025-10-13"), OpeningHour: 12, ClosingHour: 16},
			},
			globalRange: &domain.AvailableDateRange{
				From: types.DateString("2025-10-01"),
				To:   types.DateString("2025-12-31"),
			},
		}
		reservations := &fakeReservationRepo{
			reservations: []*domain.Reservation{{ID: 1, Status: domain.StatusPending}},
		}
		identity := &fakeIdentityClient{roster: []string{"ann", "bea"}}

		svc := newTestService(repo, reservations, identity)

		snapshot, err := svc.BuildSnapshot(context.Background(), types.DateString("2025-10-13"))

		require.NoError(t, err)
		assert.Equal(t, types.DateString("2025-10-10"), snapshot.Today)
		assert.Equal(t, []string{"ann", "bea"}, snapshot.StaffRoster)
		assert.True(t, snapshot.WeekdayClosed[time.Sunday])
		assert.False(t, snapshot.WeekdayClosed[time.Monday])
		assert.Equal(t, 10, snapshot.WorkingHours[time.Monday].StartHour)
		assert.Contains(t, snapshot.SpecialDays, types.DateString("2025-10-13"))
		require.Len(t, snapshot.Reservations, 1)
		assert.Equal(t, types.DateString("2025-10-13"), reservations.calledDate)
		// прошедшие разовые выходные отфильтровываются на уровне запроса
		assert.Equal(t, types.DateString("2025-10-10"), repo.daysOffAsOf)
	})

	t.Run("skips reservation lookup when no date is selected", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		reservations := &fakeReservationRepo{}
		identity := &fakeIdentityClient{roster: []string{"ann"}}

		svc := newTestService(repo, reservations, identity)

		snapshot, err := svc.BuildSnapshot(context.Background(), "")

		require.NoError(t, err)
		assert.False(t, reservations.called)
		assert.Empty(t, snapshot.Reservations)
	})

	t.Run("roster failure surfaces as ErrRosterUnavailable", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeReservationRepo{}, &fakeIdentityClient{
			err: errors.New("identity unreachable"),
		})

		_, err := svc.BuildSnapshot(context.Background(), types.DateString("2025-10-13"))

		assert.ErrorIs(t, err, ErrRosterUnavailable)
	})

	t.Run("storage failure surfaces as ErrInternal", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{
			workingHoursErr: errors.New("connection reset"),
		}, &fakeReservationRepo{}, &fakeIdentityClient{roster: []string{"ann"}})

		_, err := svc.BuildSnapshot(context.Background(), types.DateString("2025-10-13"))

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestService_GetDaysOffOverview(t *testing.T) {
	t.Run("lists future days off and staff without any", func(t *testing.T) {
		repo := &fakeScheduleRepo{
			daysOff: []domain.StaffDayOff{
				{ID: 1, StaffID: "ann", Date: types.DateString("2025-10-20")},
				{ID: 2, StaffID: "ann", Date: types.DateString("2025-10-21")},
			},
		}
		identityClient := &fakeIdentityClient{
			staff: []identity.StaffMember{
				{ID: "ann", Email: "ann@salon.example", Active: true},
				{ID: "bea", Email: "bea@salon.example", Active: true},
				{ID: "zoe", Email: "zoe@salon.example", Active: false},
			},
		}

		svc := newTestService(repo, &fakeReservationRepo{}, identityClient)

		overview, err := svc.GetDaysOffOverview(context.Background())

		require.NoError(t, err)
		require.Len(t, overview.DaysOff, 2)
		assert.Equal(t, "ann", overview.DaysOff[0].StaffID)
		assert.Equal(t, "2025-10-20", overview.DaysOff[0].Date)
		// ann занята, zoe неактивна: свободна только bea
		assert.Equal(t, []string{"bea@salon.example"}, overview.FreeStaffEmails)
		// прошедшие выходные в сводку не попадают
		assert.Equal(t, types.DateString("2025-10-10"), repo.daysOffAsOf)
	})

	t.Run("roster failure surfaces as ErrRosterUnavailable", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeReservationRepo{}, &fakeIdentityClient{
			err: errors.New("identity unreachable"),
		})

		_, err := svc.GetDaysOffOverview(context.Background())

		assert.ErrorIs(t, err, ErrRosterUnavailable)
	})
}

func TestService_UpdateWeekdayHours(t *testing.T) {
	t.Run("persists valid weekday hours", func(t *testing.T) {
		repo := &fakeScheduleRepo{}
		svc := newTestService(repo, &fakeReservationRepo{}, &fakeIdentityClient{})

		err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			DayOfWeek: 1,
			StartHour: 10,
			EndHour:   19,
		})

		require.NoError(t, err)
		require.NotNil(t, repo.upsertedHours)
		assert.Equal(t, time.Monday, repo.upsertedHours.DayOfWeek)
	})

	t.Run("rejects out-of-range weekday", func(t *testing.T) {
		svc := newTestService(&fakeScheduleRepo{}, &fakeReservationRepo{}, &fakeIdentityClient{})

		err := svc.UpdateWeekdayHours(context.Background(), &models.UpdateWeekdayHoursRequest{
			DayOfWeek: 7,
			StartHour: 10,
			EndHour:   19,
		})

		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
