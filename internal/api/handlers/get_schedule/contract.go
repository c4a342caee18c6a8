package get_schedule

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOverview(ctx context.Context) (*models.ScheduleOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
