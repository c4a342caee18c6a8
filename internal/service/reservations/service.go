package reservations

import (
	"context"
	"errors"
	"fmt"

	catalogRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/catalog"
	reservationRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/reservation"
	"github.com/houseofbeauty/appointment-service/internal/service/reservations/models"
)

// Service сервис панели сотрудника для работы с записями
type Service struct {
	reservationRepo ReservationRepository
	catalogRepo     CatalogRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservationRepo ReservationRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		catalogRepo:     catalogRepo,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	resp := models.FromDomainReservation(reservation)
	return &resp, nil
}

// List возвращает записи по фильтрам панели сотрудника
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	items, err := s.reservationRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d reservations", len(items))
	return models.FromDomainReservations(items), nil
}

// UpdateService меняет услугу записи, денормализованное название
// перечитывается из каталога
func (s *Service) UpdateService(ctx context.Context, id int64, req *models.UpdateReservationServiceRequest) error {
	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	service, err := s.catalogRepo.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			s.logger.Warn("UpdateService: service id=%d not found", req.ServiceID)
			return ErrServiceNotFound
		}
		s.logger.Error("UpdateService: failed to get service id=%d: %v", req.ServiceID, err)
		return fmt.Errorf("%w: UpdateService - catalog error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.UpdateService(ctx, id, service.ID, service.Name); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateService: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateService: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateService - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: reservation id=%d now has service id=%d (%s)", id, service.ID, service.Name)
	return nil
}

// Delete безвозвратно удаляет запись.
// Для освобождения слота с сохранением истории используется смена статуса на cancelled.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: reservation id=%d removed", id)
	return nil
}
