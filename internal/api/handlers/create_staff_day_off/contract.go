package create_staff_day_off

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	CreateStaffDayOff(ctx context.Context, req *models.CreateStaffDayOffRequest) (*models.StaffDayOffResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
