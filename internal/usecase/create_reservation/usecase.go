package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	catalogRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/catalog"
	reservationRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/reservation"
	"github.com/houseofbeauty/appointment-service/internal/integrations/mailer"
)

// UseCase use case создания записи.
// Платеж подтверждается до транзакции, выбор сотрудника и вставка
// выполняются в сериализуемой транзакции, гонки закрывает частичный
// уникальный индекс по (staff_id, booking_date, time_slot).
type UseCase struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	snapshots       SnapshotProvider
	paymentsClient  PaymentsClient
	mailerClient    MailerClient
	resolver        *availability.Resolver
	txManager       TransactionManager
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	snapshots SnapshotProvider,
	paymentsClient PaymentsClient,
	mailerClient MailerClient,
	resolver *availability.Resolver,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		snapshots:       snapshots,
		paymentsClient:  paymentsClient,
		mailerClient:    mailerClient,
		resolver:        resolver,
		txManager:       txManager,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: source=%s, date=%s, time=%s, service=%d, email=%s",
		req.Source, req.Date, req.TimeSlot, req.ServiceID, req.ClientEmail)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Ключ идемпотентности: генерируем, если клиент не прислал свой
	idempotencyKey := req.IdempotencyKey
	if idempotencyKey == "" {
		idempotencyKey = uuid.NewString()
	} else {
		// Повтор запроса с тем же ключом возвращает прежний результат
		existing, err := uc.reservationRepo.GetByIdempotencyKey(ctx, idempotencyKey)
		if err != nil && !errors.Is(err, reservationRepo.ErrReservationNotFound) {
			uc.logger.Error("CreateReservation: idempotency lookup failed for key=%s: %v", idempotencyKey, err)
			return nil, fmt.Errorf("%w: idempotency lookup failed: %v", ErrInternal, err)
		}
		if existing != nil {
			uc.logger.Info("CreateReservation: replay detected for key=%s, reservation id=%d",
				idempotencyKey, existing.ID)
			return fromDomain(existing, true), nil
		}
	}

	// 3. Проверяем услугу в каталоге
	service, err := uc.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateReservation: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateReservation: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 4. Платежный гейт для публичного виджета: запись создается
	// только после подтверждения платежа провайдером
	paymentConfirmed := false
	if req.Source == domain.SourcePublic {
		intent, err := uc.paymentsClient.VerifyIntentSucceeded(ctx, *req.PaymentIntentID)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to verify payment intent %s: %v", *req.PaymentIntentID, err)
			return nil, fmt.Errorf("%w: failed to verify payment intent: %v", ErrInternal, err)
		}
		if !intent.Succeeded() {
			uc.logger.Warn("CreateReservation: payment intent %s has status %q", intent.ID, intent.Status)
			return nil, ErrPaymentNotConfirmed
		}
		paymentConfirmed = true
	}

	// Статус зависит от источника: панель сотрудника подтверждает сразу
	status := domain.StatusPending
	if req.Source == domain.SourceDashboard {
		status = domain.StatusConfirmed
	}

	var result *domain.Reservation

	// 5. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Собираем снапшот фактов расписания на дату
		snapshot, err := uc.snapshots.BuildSnapshot(txCtx, req.Date)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to build snapshot for %s: %v", req.Date, err)
			return fmt.Errorf("%w: failed to build snapshot: %v", ErrInternal, err)
		}

		// 5.2. Проверяем, предлагается ли дата
		if !uc.resolver.IsDateOfferable(req.Date, snapshot.Today, snapshot.GlobalRange, snapshot.WeekdayClosed) {
			uc.logger.Warn("CreateReservation: date %s is not offerable", req.Date)
			return ErrDateNotOfferable
		}

		// 5.3. Детерминированно выбираем сотрудника под слот
		staffID, ok := uc.resolver.SelectStaffForSlot(req.Date, req.TimeSlot, snapshot)
		if !ok {
			if paymentConfirmed {
				// Деньги списаны, а назначить некого. Возврат делается
				// руками оператора, сигналим в лог как operational alert.
				uc.logger.Error("CreateReservation: operational alert: payment %s confirmed but no staff available for %s %s",
					*req.PaymentIntentID, req.Date, req.TimeSlot)
			} else {
				uc.logger.Warn("CreateReservation: no staff available for %s %s", req.Date, req.TimeSlot)
			}
			return ErrNoCapacity
		}

		// 5.4. Создаем запись с денормализованным названием услуги
		reservation := &domain.Reservation{
			StaffID:         &staffID,
			ServiceID:       service.ID,
			ServiceName:     service.Name,
			Date:            req.Date,
			TimeSlot:        req.TimeSlot,
			Status:          status,
			ClientName:      req.ClientName,
			ClientFirstname: req.ClientFirstname,
			ClientEmail:     req.ClientEmail,
			ClientPhone:     req.ClientPhone,
			Description:     req.Description,
			PaymentIntentID: req.PaymentIntentID,
			IdempotencyKey:  idempotencyKey,
		}

		created, err := uc.reservationRepo.Create(txCtx, reservation)
		if err != nil {
			// Гонка на один и тот же слот: уникальный индекс отработал раньше нас
			if errors.Is(err, reservationRepo.ErrSlotTaken) {
				uc.logger.Warn("CreateReservation: slot %s %s taken by concurrent request (staff=%s)",
					req.Date, req.TimeSlot, staffID)
				return ErrNoCapacity
			}
			if errors.Is(err, reservationRepo.ErrDuplicateIdempotencyKey) {
				return err
			}
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		// Параллельный повтор с тем же ключом успел вставить запись первым
		if errors.Is(err, reservationRepo.ErrDuplicateIdempotencyKey) {
			existing, lookupErr := uc.reservationRepo.GetByIdempotencyKey(ctx, idempotencyKey)
			if lookupErr != nil {
				uc.logger.Error("CreateReservation: replay lookup failed for key=%s: %v", idempotencyKey, lookupErr)
				return nil, fmt.Errorf("%w: replay lookup failed: %v", ErrInternal, lookupErr)
			}
			uc.logger.Info("CreateReservation: concurrent replay for key=%s, reservation id=%d",
				idempotencyKey, existing.ID)
			return fromDomain(existing, true), nil
		}
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, staff=%s, status=%s",
		result.ID, *result.StaffID, result.Status)

	// 6. Письмо клиенту best-effort: неудача доставки не откатывает запись
	email := mailer.ReservationEmail{
		To:          result.ClientEmail,
		ClientName:  result.ClientFirstname,
		ServiceName: result.ServiceName,
		Date:        result.Date.String(),
		TimeSlot:    result.TimeSlot.String(),
	}
	if err := uc.mailerClient.SendReservationConfirmed(ctx, email); err != nil {
		uc.logger.Warn("CreateReservation: confirmation email failed for reservation id=%d: %v", result.ID, err)
	}

	return fromDomain(result, false), nil
}
