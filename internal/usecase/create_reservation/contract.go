package create_reservation

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
	"github.com/houseofbeauty/appointment-service/internal/integrations/payments"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	Create(ctx context.Context, reservation *domain.Reservation) (*domain.Reservation, error)
	GetByIdempotencyKey(ctx context.Context, key string) (*domain.Reservation, error)
}

// CatalogRepository интерфейс репозитория каталога услуг
type CatalogRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
}

// SnapshotProvider интерфейс сборки снапшота фактов расписания
type SnapshotProvider interface {
	BuildSnapshot(ctx context.Context, date types.DateString) (*availability.Snapshot, error)
}

// PaymentsClient интерфейс клиента провайдера платежей
type PaymentsClient interface {
	VerifyIntentSucceeded(ctx context.Context, intentID string) (*payments.Intent, error)
}

// MailerClient интерфейс клиента почтового релея
type MailerClient interface {
	SendReservationConfirmed(ctx context.Context, email mailer.ReservationEmail) error
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
