package reservation

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
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

func sampleReservation() *domain.Reservation {
	staffID := "ann"
	return &domain.Reservation{
		StaffID:         &staffID,
		ServiceID:       2,
		ServiceName:     "Стрижка",
		Date:            types.DateString("2025-10-13"),
		TimeSlot:        types.TimeString("10:00"),
		Status:          domain.StatusPending,
		ClientName:      "Dupont",
		ClientFirstname: "Marie",
		ClientEmail:     "marie@example.com",
		ClientPhone:     "+33600000000",
		IdempotencyKey:  "key-1",
	}
}

func reservationRow(id int64, staffID interface{}, status string) *sqlmock.Rows {
	now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
	return sqlmock.NewRows(reservationColumns).AddRow(
		id,
		staffID,
		int64(2),
		"Стрижка",
		time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		"10:00:00",
		status,
		"Dupont",
		"Marie",
		"marie@example.com",
		"+33600000000",
		nil,
		nil,
		"key-1",
		now,
		now,
	)
}

func TestRepository_Create(t *testing.T) {
	t.Run("returns reservation with generated id and timestamps", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		now := time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC)
		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now))

		created, err := repo.Create(context.Background(), sampleReservation())

		require.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)
		assert.Equal(t, now, created.CreatedAt)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps slot constraint violation to ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_staff_slot"})

		_, err := repo.Create(context.Background(), sampleReservation())

		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("maps idempotency key violation to ErrDuplicateIdempotencyKey", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("INSERT INTO reservations").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_idempotency_key"})

		_, err := repo.Create(context.Background(), sampleReservation())

		assert.ErrorIs(t, err, ErrDuplicateIdempotencyKey)
	})
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("scans full row", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM reservations WHERE id").
			WithArgs(int64(7)).
			WillReturnRows(reservationRow(7, "ann", "pending"))

		got, err := repo.GetByID(context.Background(), 7)

		require.NoError(t, err)
		assert.Equal(t, int64(7), got.ID)
		require.NotNil(t, got.StaffID)
		assert.Equal(t, "ann", *got.StaffID)
		assert.Equal(t, types.DateString("2025-10-13"), got.Date)
		assert.Equal(t, types.TimeString("10:00"), got.TimeSlot)
		assert.Equal(t, domain.StatusPending, got.Status)
		assert.Nil(t, got.PaymentIntentID)
	})

	t.Run("returns ErrReservationNotFound on empty result", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM reservations WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(reservationColumns))

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_GetByIdempotencyKey(t *testing.T) {
	t.Run("finds reservation by key", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM reservations WHERE idempotency_key").
			WithArgs("key-1").
			WillReturnRows(reservationRow(7, "ann", "pending"))

		got, err := repo.GetByIdempotencyKey(context.Background(), "key-1")

		require.NoError(t, err)
		assert.Equal(t, "key-1", got.IdempotencyKey)
	})

	t.Run("returns ErrReservationNotFound for unknown key", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM reservations WHERE idempotency_key").
			WithArgs("missing").
			WillReturnRows(sqlmock.NewRows(reservationColumns))

		_, err := repo.GetByIdempotencyKey(context.Background(), "missing")

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_ListActiveByDate(t *testing.T) {
	repo, mock := newMockRepo(t)

	rows := reservationRow(1, "ann", "pending").AddRow(
		int64(2),
		"bea",
		int64(2),
		"Стрижка",
		time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC),
		"11:00:00",
		"confirmed",
		"Martin",
		"Luc",
		"luc@example.com",
		"+33611111111",
		nil,
		nil,
		"key-2",
		time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC),
	)

	mock.ExpectQuery("SELECT .+ FROM reservations WHERE booking_date").
		WillReturnRows(rows)

	got, err := repo.ListActiveByDate(context.Background(), types.DateString("2025-10-13"))

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StatusPending, got[0].Status)
	assert.Equal(t, domain.StatusConfirmed, got[1].Status)
}

func TestRepository_Cancel(t *testing.T) {
	t.Run("clears staff and sets cancelled status", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Cancel(context.Background(), 7)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrReservationNotFound when no rows affected", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Cancel(context.Background(), 99)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_UpdateStatus(t *testing.T) {
	t.Run("updates existing reservation", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateStatus(context.Background(), 7, domain.StatusConfirmed)

		assert.NoError(t, err)
	})

	t.Run("returns ErrReservationNotFound for missing id", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateStatus(context.Background(), 99, domain.StatusConfirmed)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_AssignStaff(t *testing.T) {
	t.Run("assigns staff and status", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.AssignStaff(context.Background(), 7, "ann", domain.StatusPending)

		assert.NoError(t, err)
	})

	t.Run("maps slot constraint violation to ErrSlotTaken", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "uq_reservations_staff_slot"})

		err := repo.AssignStaff(context.Background(), 7, "ann", domain.StatusPending)

		assert.ErrorIs(t, err, ErrSlotTaken)
	})

	t.Run("returns ErrReservationNotFound for missing id", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE reservations SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.AssignStaff(context.Background(), 99, "ann", domain.StatusPending)

		assert.ErrorIs(t, err, ErrReservationNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM reservations").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Delete(context.Background(), 7)

	assert.NoError(t, err)
}
