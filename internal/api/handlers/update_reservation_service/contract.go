package update_reservation_service

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/reservations/models"
)

type ReservationsService interface {
	UpdateService(ctx context.Context, id int64, req *models.UpdateReservationServiceRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
