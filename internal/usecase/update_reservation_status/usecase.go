package update_reservation_status

import (
	"context"
	"errors"
	"fmt"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	reservationRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/reservation"
	"github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
)

// UseCase use case смены статуса записи.
// Отмена освобождает слот и снимает сотрудника. Возврат отмененной записи
// проходит через повторный выбор сотрудника: прежний слот за время отмены
// мог занять кто-то другой.
type UseCase struct {
	reservationRepo ReservationRepository
	snapshots       SnapshotProvider
	mailerClient    MailerClient
	resolver        *availability.Resolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	snapshots SnapshotProvider,
	mailerClient MailerClient,
	resolver *availability.Resolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		snapshots:       snapshots,
		mailerClient:    mailerClient,
		resolver:        resolver,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case смены статуса
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservationStatus: id=%d, status=%s", req.ReservationID, req.Status)

	// 1. Валидация входных данных
	if req.ReservationID <= 0 {
		return nil, fmt.Errorf("%w: reservationId must be positive", ErrInvalidInput)
	}
	if !domain.ValidStatus(req.Status) {
		uc.logger.Warn("UpdateReservationStatus: unknown status %q", req.Status)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}

	var result *domain.Reservation

	// 2. Читаем, решаем и пишем в одной сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		reservation, err := uc.reservationRepo.GetByID(txCtx, req.ReservationID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservationStatus: reservation id=%d not found", req.ReservationID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservationStatus: failed to get reservation id=%d: %v", req.ReservationID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// Статус уже целевой, делать нечего
		if reservation.Status == req.Status {
			result = reservation
			return nil
		}

		switch {
		case req.Status == domain.StatusCancelled:
			// Отмена: слот освобождается, сотрудник снимается
			if err := uc.reservationRepo.Cancel(txCtx, reservation.ID); err != nil {
				uc.logger.Error("UpdateReservationStatus: failed to cancel reservation id=%d: %v", reservation.ID, err)
				return fmt.Errorf("%w: failed to cancel: %v", ErrInternal, err)
			}
			reservation.Status = domain.StatusCancelled
			reservation.StaffID = nil

		case reservation.IsCancelled():
			// Возврат отмененной записи: сотрудника нужно выбрать заново
			snapshot, err := uc.snapshots.BuildSnapshot(txCtx, reservation.Date)
			if err != nil {
				uc.logger.Error("UpdateReservationStatus: failed to build snapshot for %s: %v", reservation.Date, err)
				return fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
			}

			staffID, ok := uc.resolver.SelectStaffForSlot(reservation.Date, reservation.TimeSlot, snapshot)
			if !ok {
				uc.logger.Warn("UpdateReservationStatus: cannot reactivate id=%d, slot %s %s has no capacity",
					reservation.ID, reservation.Date, reservation.TimeSlot)
				return ErrNoCapacity
			}

			if err := uc.reservationRepo.AssignStaff(txCtx, reservation.ID, staffID, req.Status); err != nil {
				if errors.Is(err, reservationRepo.ErrSlotTaken) {
					uc.logger.Warn("UpdateReservationStatus: slot taken during reactivation of id=%d", reservation.ID)
					return ErrNoCapacity
				}
				uc.logger.Error("UpdateReservationStatus: failed to assign staff for id=%d: %v", reservation.ID, err)
				return fmt.Errorf("%w: failed to assign staff: %v", ErrInternal, err)
			}
			reservation.Status = req.Status
			reservation.StaffID = &staffID

		default:
			// Переход pending <-> confirmed при назначенном сотруднике
			if err := uc.reservationRepo.UpdateStatus(txCtx, reservation.ID, req.Status); err != nil {
				uc.logger.Error("UpdateReservationStatus: failed to update status for id=%d: %v", reservation.ID, err)
				return fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
			}
			reservation.Status = req.Status
		}

		result = reservation
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservationStatus: reservation id=%d now %s", result.ID, result.Status)

	// 3. Письмо об отмене best-effort
	if req.Status == domain.StatusCancelled {
		email := mailer.ReservationEmail{
			To:          result.ClientEmail,
			ClientName:  result.ClientFirstname,
			ServiceName: result.ServiceName,
			Date:        result.Date.String(),
			TimeSlot:    result.TimeSlot.String(),
		}
		if err := uc.mailerClient.SendReservationCancelled(ctx, email); err != nil {
			uc.logger.Warn("UpdateReservationStatus: cancellation email failed for id=%d: %v", result.ID, err)
		}
	}

	return &Response{
		ID:        result.ID,
		StaffID:   result.StaffID,
		Date:      result.Date,
		TimeSlot:  result.TimeSlot,
		Status:    string(result.Status),
		UpdatedAt: result.UpdatedAt,
	}, nil
}
