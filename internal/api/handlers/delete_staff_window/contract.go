package delete_staff_window

import "context"

type ScheduleService interface {
	DeleteStaffWindow(ctx context.Context, staffID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
