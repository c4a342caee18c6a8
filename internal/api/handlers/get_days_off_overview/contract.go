package get_days_off_overview

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetDaysOffOverview(ctx context.Context) (*models.DaysOffOverviewResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
