package delete_staff_weekly_day_off

import "context"

type ScheduleService interface {
	DeleteStaffWeeklyDayOff(ctx context.Context, staffID string, dayOfWeek int) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
