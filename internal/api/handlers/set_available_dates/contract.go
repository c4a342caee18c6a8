package set_available_dates

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	SetAvailableDateRange(ctx context.Context, req *models.SetAvailableDateRangeRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
