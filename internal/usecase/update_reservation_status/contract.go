package update_reservation_status

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ReservationStatus) error
	AssignStaff(ctx context.Context, id int64, staffID string, status domain.ReservationStatus) error
	Cancel(ctx context.Context, id int64) error
}

// SnapshotProvider интерфейс сборки снапшота фактов расписания
type SnapshotProvider interface {
	BuildSnapshot(ctx context.Context, date types.DateString) (*availability.Snapshot, error)
}

// MailerClient интерфейс клиента почтового релея
type MailerClient interface {
	SendReservationCancelled(ctx context.Context, email mailer.ReservationEmail) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
