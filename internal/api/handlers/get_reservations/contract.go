package get_reservations

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/reservations/models"
)

type ReservationsService interface {
	List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
