package delete_staff_day_off

import "context"

type ScheduleService interface {
	DeleteStaffDayOff(ctx context.Context, id int64) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
