package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_GetWorkingHours(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM working_hours").
		WillReturnRows(sqlmock.NewRows([]string{"day_of_week", "start_hour", "end_hour", "closed"}).
			AddRow(1, 10, 19, false).
			AddRow(0, 0, 0, true))

	got, err := repo.GetWorkingHours(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Monday, got[0].DayOfWeek)
	assert.Equal(t, 10, got[0].StartHour)
	assert.Equal(t, 19, got[0].EndHour)
	assert.False(t, got[0].Closed)
	assert.Equal(t, time.Sunday, got[1].DayOfWeek)
	assert.True(t, got[1].Closed)
}

func TestRepository_UpsertWorkingHours(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("INSERT INTO working_hours").
		WithArgs(1, 10, 19, false).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpsertWorkingHours(context.Background(), domain.WorkingHours{
		DayOfWeek: time.Monday,
		StartHour: 10,
		EndHour:   19,
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetAvailableDateRange(t *testing.T) {
	t.Run("returns configured range", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM available_dates").
			WillReturnRows(sqlmock.NewRows([]string{"from_date", "to_date"}).
				AddRow(
					time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
				))

		got, err := repo.GetAvailableDateRange(context.Background())

		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, types.DateString("2025-10-01"), got.From)
		assert.Equal(t, types.DateString("2025-12-31"), got.To)
	})

	t.Run("returns nil when range is not configured", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM available_dates").
			WillReturnRows(sqlmock.NewRows([]string{"from_date", "to_date"}))

		got, err := repo.GetAvailableDateRange(context.Background())

		require.NoError(t, err)
		assert.Nil(t, got)
	})
}

func TestRepository_ReplaceAvailableDateRange(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM available_dates").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO available_dates").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.ReplaceAvailableDateRange(context.Background(), domain.AvailableDateRange{
		From: types.DateString("2025-10-01"),
		To:   types.DateString("2025-12-31"),
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetStaffDaysOff(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM staff_days_off").
		WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "date"}).
			AddRow(int64(1), "ann", time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC)))

	got, err := repo.GetStaffDaysOff(context.Background(), types.DateString("2025-10-13"))

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ann", got[0].StaffID)
	assert.Equal(t, types.DateString("2025-10-20"), got[0].Date)
}

func TestRepository_CreateStaffDayOff(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("INSERT INTO staff_days_off").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	got, err := repo.CreateStaffDayOff(context.Background(), &domain.StaffDayOff{
		StaffID: "ann",
		Date:    types.DateString("2025-10-20"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(5), got.ID)
}

func TestRepository_DeleteStaffDayOff(t *testing.T) {
	t.Run("deletes existing day off", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM staff_days_off").
			WithArgs(int64(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.DeleteStaffDayOff(context.Background(), 5)

		assert.NoError(t, err)
	})

	t.Run("returns ErrNotFound when no rows affected", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM staff_days_off").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.DeleteStaffDayOff(context.Background(), 99)

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_GetStaffAvailabilityWindow(t *testing.T) {
	t.Run("returns window", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM staff_availability_windows").
			WithArgs("ann").
			WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "from_date", "to_date"}).
				AddRow(
					int64(3),
					"ann",
					time.Date(2025, 10, 1, 0, 0, 0, 0, time.UTC),
					time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC),
				))

		got, err := repo.GetStaffAvailabilityWindow(context.Background(), "ann")

		require.NoError(t, err)
		assert.Equal(t, "ann", got.StaffID)
		assert.Equal(t, types.DateString("2025-10-01"), got.From)
	})

	t.Run("returns ErrNotFound when staff has no window", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM staff_availability_windows").
			WithArgs("ghost").
			WillReturnRows(sqlmock.NewRows([]string{"id", "staff_id", "from_date", "to_date"}))

		_, err := repo.GetStaffAvailabilityWindow(context.Background(), "ghost")

		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestRepository_GetStaffWeeklyDaysOffByStaff(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT .+ FROM staff_weekly_days_off").
		WillReturnRows(sqlmock.NewRows([]string{"staff_id", "day_of_week", "available"}).
			AddRow("ann", 1, false).
			AddRow("bea", 2, false))

	got, err := repo.GetStaffWeeklyDaysOffByStaff(context.Background(), "ann")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "ann", got[0].StaffID)
	assert.Equal(t, time.Monday, got[0].DayOfWeek)
}
