package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func TestRepository_List(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("SELECT .+ FROM services").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(int64(1), "Маникюр", createdAt).
			AddRow(int64(2), "Стрижка", createdAt))

	got, err := repo.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Маникюр", got[0].Name)
	assert.Equal(t, "Стрижка", got[1].Name)
}

func TestRepository_GetByID(t *testing.T) {
	t.Run("returns service", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM services WHERE id").
			WithArgs(int64(2)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
				AddRow(int64(2), "Стрижка", time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)))

		got, err := repo.GetByID(context.Background(), 2)

		require.NoError(t, err)
		assert.Equal(t, int64(2), got.ID)
		assert.Equal(t, "Стрижка", got.Name)
	})

	t.Run("returns ErrServiceNotFound on empty result", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectQuery("SELECT .+ FROM services WHERE id").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

		_, err := repo.GetByID(context.Background(), 99)

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)

	createdAt := time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO services").
		WithArgs("Окрашивание").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(int64(3), createdAt))

	got, err := repo.Create(context.Background(), "Окрашивание")

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
	assert.Equal(t, "Окрашивание", got.Name)
	assert.Equal(t, createdAt, got.CreatedAt)
}

func TestRepository_UpdateName(t *testing.T) {
	t.Run("renames existing service", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE services SET").
			WithArgs("Укладка", int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateName(context.Background(), 2, "Укладка")

		assert.NoError(t, err)
	})

	t.Run("returns ErrServiceNotFound when no rows affected", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("UPDATE services SET").
			WithArgs("Укладка", int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateName(context.Background(), 99, "Укладка")

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	t.Run("deletes existing service", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM services").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), 2)

		assert.NoError(t, err)
	})

	t.Run("returns ErrServiceNotFound when no rows affected", func(t *testing.T) {
		repo, mock := newMockRepo(t)

		mock.ExpectExec("DELETE FROM services").
			WithArgs(int64(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), 99)

		assert.ErrorIs(t, err, ErrServiceNotFound)
	})
}
