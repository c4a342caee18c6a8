package get_staff_availability

import (
	"context"

	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetStaffAvailability(ctx context.Context, staffID string) (*models.StaffAvailabilityResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
