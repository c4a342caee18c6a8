package upsert_staff_weekly_day_off

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	UpsertStaffWeeklyDayOff(ctx context.Context, req *models.UpsertStaffWeeklyDayOffRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
