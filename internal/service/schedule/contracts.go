package schedule

import (
	"context"
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/internal/integrations/identity"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// ScheduleRepository интерфейс репозитория фактов расписания
type ScheduleRepository interface {
	GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error)
	UpsertWorkingHours(ctx context.Context, hours domain.WorkingHours) error
	GetSpecialDays(ctx context.Context) ([]domain.SpecialDay, error)
	UpsertSpecialDay(ctx context.Context, day domain.SpecialDay) error
	DeleteSpecialDay(ctx context.Context, date types.DateString) error
	GetAvailableDateRange(ctx context.Context) (*domain.AvailableDateRange, error)
	ReplaceAvailableDateRange(ctx context.Context, dateRange domain.AvailableDateRange) error
	GetStaffWeeklyDaysOff(ctx context.Context) ([]domain.StaffWeeklyDayOff, error)
	GetStaffWeeklyDaysOffByStaff(ctx context.Context, staffID string) ([]domain.StaffWeeklyDayOff, error)
	UpsertStaffWeeklyDayOff(ctx context.Context, dayOff domain.StaffWeeklyDayOff) error
	DeleteStaffWeeklyDayOff(ctx context.Context, staffID string, dayOfWeek time.Weekday) error
	GetStaffDaysOff(ctx context.Context, asOf types.DateString) ([]domain.StaffDayOff, error)
	CreateStaffDayOff(ctx context.Context, dayOff *domain.StaffDayOff) (*domain.StaffDayOff, error)
	DeleteStaffDayOff(ctx context.Context, id int64) error
	GetStaffAvailabilityWindows(ctx context.Context) ([]domain.StaffAvailabilityWindow, error)
	GetStaffAvailabilityWindow(ctx context.Context, staffID string) (*domain.StaffAvailabilityWindow, error)
	UpsertStaffAvailabilityWindow(ctx context.Context, window domain.StaffAvailabilityWindow) error
	DeleteStaffAvailabilityWindow(ctx context.Context, staffID string) error
}

// ReservationRepository интерфейс репозитория записей (только чтение для снапшота)
type ReservationRepository interface {
	ListActiveByDate(ctx context.Context, date types.DateString) ([]*domain.Reservation, error)
}

// IdentityClient интерфейс клиента сервиса идентификации персонала
type IdentityClient interface {
	ListStaff(ctx context.Context) ([]identity.StaffMember, error)
	ListStaffIDs(ctx context.Context) ([]string, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
