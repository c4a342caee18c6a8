package update_reservation_status

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	reservationRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/reservation"
	"github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeReservationRepo struct {
	reservation *domain.Reservation

	updatedStatus *domain.ReservationStatus
	assignedStaff *string
	cancelled     bool
	assignErr     error
}

func (f *fakeReservationRepo) GetByID(_ context.Context, id int64) (*domain.Reservation, error) {
	if f.reservation == nil || f.reservation.ID != id {
		return nil, reservationRepo.ErrReservationNotFound
	}
	copied := *f.reservation
	return &copied, nil
}

func (f *fakeReservationRepo) UpdateStatus(_ context.Context, _ int64, status domain.ReservationStatus) error {
	f.updatedStatus = &status
	return nil
}

func (f *fakeReservationRepo) AssignStaff(_ context.Context, _ int64, staffID string, status domain.ReservationStatus) error {
	if f.assignErr != nil {
		return f.assignErr
	}
	f.assignedStaff = &staffID
	f.updatedStatus = &status
	return nil
}

func (f *fakeReservationRepo) Cancel(_ context.Context, _ int64) error {
	f.cancelled = true
	return nil
}

type fakeSnapshotProvider struct {
	snapshot *availability.Snapshot
	err      error
}

func (f *fakeSnapshotProvider) BuildSnapshot(context.Context, types.DateString) (*availability.Snapshot, error) {
	return f.snapshot, f.err
}

type fakeMailer struct {
	sent []mailer.ReservationEmail
}

func (f *fakeMailer) SendReservationCancelled(_ context.Context, email mailer.ReservationEmail) error {
	f.sent = append(f.sent, email)
	return nil
}

type passthroughTxManager struct{}

func (passthroughTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

const (
	testDate = types.DateString("2025-10-13")
	testSlot = types.TimeString("10:00")
)

func activeReservation() *domain.Reservation {
	staff := "ann"
	return &domain.Reservation{
		ID:              5,
		StaffID:         &staff,
		ServiceID:       7,
		ServiceName:     "Soin visage",
		Date:            testDate,
		TimeSlot:        testSlot,
		Status:          domain.StatusPending,
		ClientFirstname: "Marie",
		ClientEmail:     "marie@example.com",
	}
}

func openSnapshot() *availability.Snapshot {
	return &availability.Snapshot{
		Today:         "2025-10-10",
		WeekdayClosed: map[time.Weekday]bool{},
		WorkingHours:  map[time.Weekday]domain.WorkingHours{},
		SpecialDays:   map[types.DateString]domain.SpecialDay{},
		StaffRoster:   []string{"bea"},
		Windows: []domain.StaffAvailabilityWindow{
			{ID: 1, StaffID: "bea", From: "2025-01-01", To: "2025-12-31"},
		},
	}
}

func newTestUseCase(repo *fakeReservationRepo, snaps *fakeSnapshotProvider, mail *fakeMailer) *UseCase {
	return NewUseCase(repo, snaps, mail,
		availability.NewResolver(nopLogger{}), passthroughTxManager{}, nopLogger{})
}

func TestExecute_ConfirmPending(t *testing.T) {
	repo := &fakeReservationRepo{reservation: activeReservation()}
	mail := &fakeMailer{}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{}, mail)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusConfirmed})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, repo.updatedStatus)
	assert.Equal(t, domain.StatusConfirmed, *repo.updatedStatus)
	assert.False(t, repo.cancelled)
	assert.Empty(t, mail.sent)
}

func TestExecute_CancelFreesSlotAndNotifiesClient(t *testing.T) {
	repo := &fakeReservationRepo{reservation: activeReservation()}
	mail := &fakeMailer{}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{}, mail)

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusCancelled})
	require.NoError(t, err)

	assert.True(t, repo.cancelled)
	assert.Equal(t, string(domain.StatusCancelled), resp.Status)
	assert.Nil(t, resp.StaffID, "cancellation must unassign the staff member")

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "marie@example.com", mail.sent[0].To)
}

func TestExecute_ReactivateReassignsStaff(t *testing.T) {
	cancelled := activeReservation()
	cancelled.Status = domain.StatusCancelled
	cancelled.StaffID = nil

	repo := &fakeReservationRepo{reservation: cancelled}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{snapshot: openSnapshot()}, &fakeMailer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusConfirmed})
	require.NoError(t, err)

	require.NotNil(t, resp.StaffID)
	assert.Equal(t, "bea", *resp.StaffID)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, repo.assignedStaff)
	assert.Equal(t, "bea", *repo.assignedStaff)
}

func TestExecute_ReactivateFailsWhenSlotGone(t *testing.T) {
	cancelled := activeReservation()
	cancelled.Status = domain.StatusCancelled
	cancelled.StaffID = nil

	snapshot := openSnapshot()
	staff := "bea"
	snapshot.Reservations = []*domain.Reservation{
		{ID: 99, StaffID: &staff, Date: testDate, TimeSlot: testSlot, Status: domain.StatusConfirmed},
	}

	repo := &fakeReservationRepo{reservation: cancelled}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{snapshot: snapshot}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusConfirmed})
	assert.ErrorIs(t, err, ErrNoCapacity)
	assert.Nil(t, repo.assignedStaff, "the cancelled row must stay untouched")
}

func TestExecute_ReactivateRaceOnInsertMapsToNoCapacity(t *testing.T) {
	cancelled := activeReservation()
	cancelled.Status = domain.StatusCancelled
	cancelled.StaffID = nil

	repo := &fakeReservationRepo{reservation: cancelled, assignErr: reservationRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{snapshot: openSnapshot()}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusConfirmed})
	assert.ErrorIs(t, err, ErrNoCapacity)
}

func TestExecute_SameStatusIsNoop(t *testing.T) {
	repo := &fakeReservationRepo{reservation: activeReservation()}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{}, &fakeMailer{})

	resp, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: domain.StatusPending})
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusPending), resp.Status)
	assert.Nil(t, repo.updatedStatus)
	assert.False(t, repo.cancelled)
}

func TestExecute_NotFound(t *testing.T) {
	repo := &fakeReservationRepo{}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 123, Status: domain.StatusConfirmed})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestExecute_InvalidStatus(t *testing.T) {
	repo := &fakeReservationRepo{reservation: activeReservation()}
	uc := newTestUseCase(repo, &fakeSnapshotProvider{}, &fakeMailer{})

	_, err := uc.Execute(context.Background(), &Request{ReservationID: 5, Status: "archived"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
