package schedule

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/dbmetrics"
	"github.com/houseofbeauty/appointment-service/pkg/psqlbuilder"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Repository репозиторий фактов расписания: часы работы, особые дни,
// глобальный диапазон записи и ограничения доступности сотрудников
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория расписания
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours возвращает недельное расписание бизнеса (по одной записи на день недели)
func (r *Repository) GetWorkingHours(ctx context.Context) ([]domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("day_of_week", "start_hour", "end_hour", "closed").
		From("working_hours").
		OrderBy("day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	hours := make([]domain.WorkingHours, 0, 7)
	for rows.Next() {
		var wh domain.WorkingHours
		var weekday int
		if err := rows.Scan(&weekday, &wh.StartHour, &wh.EndHour, &wh.Closed); err != nil {
			return nil, fmt.Errorf("%w: GetWorkingHours - scan row: %v", ErrScanRow, err)
		}
		wh.DayOfWeek = time.Weekday(weekday)
		hours = append(hours, wh)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - rows iteration: %v", ErrExecQuery, err)
	}

	return hours, nil
}

// UpsertWorkingHours перезаписывает расписание одного дня недели.
// Записи никогда не удаляются, только переписываются.
func (r *Repository) UpsertWorkingHours(ctx context.Context, hours domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("working_hours").
		Columns("day_of_week", "start_hour", "end_hour", "closed").
		Values(int(hours.DayOfWeek), hours.StartHour, hours.EndHour, hours.Closed).
		Suffix("ON CONFLICT (day_of_week) DO UPDATE SET start_hour = EXCLUDED.start_hour, end_hour = EXCLUDED.end_hour, closed = EXCLUDED.closed").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertWorkingHours - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// GetSpecialDays возвращает все точечные переопределения часов работы
func (r *Repository) GetSpecialDays(ctx context.Context) ([]domain.SpecialDay, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date", "opening_hour", "closing_hour").
		From("special_days").
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDays - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	days := make([]domain.SpecialDay, 0)
	for rows.Next() {
		var day domain.SpecialDay
		if err := rows.Scan(&day.Date, &day.OpeningHour, &day.ClosingHour); err != nil {
			return nil, fmt.Errorf("%w: GetSpecialDays - scan row: %v", ErrScanRow, err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetSpecialDays - rows iteration: %v", ErrExecQuery, err)
	}

	return days, nil
}

// UpsertSpecialDay создает или переписывает особый день (уникален по дате)
func (r *Repository) UpsertSpecialDay(ctx context.Context, day domain.SpecialDay) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("special_days").
		Columns("date", "opening_hour", "closing_hour").
		Values(day.Date, day.OpeningHour, day.ClosingHour).
		Suffix("ON CONFLICT (date) DO UPDATE SET opening_hour = EXCLUDED.opening_hour, closing_hour = EXCLUDED.closing_hour").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertSpecialDay - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteSpecialDay удаляет особый день по дате
func (r *Repository) DeleteSpecialDay(ctx context.Context, date types.DateString) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("special_days").
		Where(squirrel.Eq{"date": date}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteSpecialDay - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteSpecialDay")
}

// GetAvailableDateRange возвращает глобальный диапазон записи; nil если не задан
func (r *Repository) GetAvailableDateRange(ctx context.Context) (*domain.AvailableDateRange, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("from_date", "to_date").
		From("available_dates").
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableDateRange - build select query: %v", ErrBuildQuery, err)
	}

	var dateRange domain.AvailableDateRange
	err = executor.QueryRowContext(ctx, query, args...).Scan(&dateRange.From, &dateRange.To)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetAvailableDateRange - scan row: %v", ErrScanRow, err)
	}

	return &dateRange, nil
}

// ReplaceAvailableDateRange заменяет глобальный диапазон целиком (единственная запись)
func (r *Repository) ReplaceAvailableDateRange(ctx context.Context, dateRange domain.AvailableDateRange) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("available_dates").ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailableDateRange - build delete query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailableDateRange - execute delete: %v", ErrExecQuery, err)
	}

	insertQuery, insertArgs, err := psqlbuilder.Insert("available_dates").
		Columns("from_date", "to_date").
		Values(dateRange.From, dateRange.To).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceAvailableDateRange - build insert query: %v", ErrBuildQuery, err)
	}
	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceAvailableDateRange - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetStaffWeeklyDaysOff возвращает еженедельные выходные всех сотрудников
func (r *Repository) GetStaffWeeklyDaysOff(ctx context.Context) ([]domain.StaffWeeklyDayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("staff_id", "day_of_week", "available").
		From("staff_weekly_days_off").
		OrderBy("staff_id ASC, day_of_week ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffWeeklyDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffWeeklyDaysOff - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysOff := make([]domain.StaffWeeklyDayOff, 0)
	for rows.Next() {
		var dayOff domain.StaffWeeklyDayOff
		var weekday int
		if err := rows.Scan(&dayOff.StaffID, &weekday, &dayOff.Available); err != nil {
			return nil, fmt.Errorf("%w: GetStaffWeeklyDaysOff - scan row: %v", ErrScanRow, err)
		}
		dayOff.DayOfWeek = time.Weekday(weekday)
		daysOff = append(daysOff, dayOff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffWeeklyDaysOff - rows iteration: %v", ErrExecQuery, err)
	}

	return daysOff, nil
}

// GetStaffWeeklyDaysOffByStaff возвращает еженедельные выходные одного сотрудника
func (r *Repository) GetStaffWeeklyDaysOffByStaff(ctx context.Context, staffID string) ([]domain.StaffWeeklyDayOff, error) {
	all, err := r.GetStaffWeeklyDaysOff(ctx)
	if err != nil {
		return nil, err
	}

	filtered := make([]domain.StaffWeeklyDayOff, 0)
	for _, dayOff := range all {
		if dayOff.StaffID == staffID {
			filtered = append(filtered, dayOff)
		}
	}
	return filtered, nil
}

// UpsertStaffWeeklyDayOff создает или переписывает еженедельный выходной
// (уникален по паре сотрудник + день недели)
func (r *Repository) UpsertStaffWeeklyDayOff(ctx context.Context, dayOff domain.StaffWeeklyDayOff) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_weekly_days_off").
		Columns("staff_id", "day_of_week", "available").
		Values(dayOff.StaffID, int(dayOff.DayOfWeek), dayOff.Available).
		Suffix("ON CONFLICT (staff_id, day_of_week) DO UPDATE SET available = EXCLUDED.available").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertStaffWeeklyDayOff - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertStaffWeeklyDayOff - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteStaffWeeklyDayOff удаляет еженедельный выходной сотрудника
func (r *Repository) DeleteStaffWeeklyDayOff(ctx context.Context, staffID string, dayOfWeek time.Weekday) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_weekly_days_off").
		Where(squirrel.Eq{"staff_id": staffID, "day_of_week": int(dayOfWeek)}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteStaffWeeklyDayOff - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteStaffWeeklyDayOff")
}

// GetStaffDaysOff возвращает разовые выходные начиная с даты asOf.
// Прошедшие выходные не участвуют в разрешении доступности.
func (r *Repository) GetStaffDaysOff(ctx context.Context, asOf types.DateString) ([]domain.StaffDayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "date").
		From("staff_days_off").
		Where(squirrel.GtOrEq{"date": asOf}).
		OrderBy("date ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaysOff - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaysOff - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	daysOff := make([]domain.StaffDayOff, 0)
	for rows.Next() {
		var dayOff domain.StaffDayOff
		if err := rows.Scan(&dayOff.ID, &dayOff.StaffID, &dayOff.Date); err != nil {
			return nil, fmt.Errorf("%w: GetStaffDaysOff - scan row: %v", ErrScanRow, err)
		}
		daysOff = append(daysOff, dayOff)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffDaysOff - rows iteration: %v", ErrExecQuery, err)
	}

	return daysOff, nil
}

// CreateStaffDayOff создает разовый выходной сотрудника
func (r *Repository) CreateStaffDayOff(ctx context.Context, dayOff *domain.StaffDayOff) (*domain.StaffDayOff, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_days_off").
		Columns("staff_id", "date").
		Values(dayOff.StaffID, dayOff.Date).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: CreateStaffDayOff - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&dayOff.ID); err != nil {
		return nil, fmt.Errorf("%w: CreateStaffDayOff - execute insert: %v", ErrExecQuery, err)
	}
	return dayOff, nil
}

// DeleteStaffDayOff удаляет разовый выходной по ID
func (r *Repository) DeleteStaffDayOff(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_days_off").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteStaffDayOff - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteStaffDayOff")
}

// GetStaffAvailabilityWindows возвращает периоды назначаемости всех сотрудников
func (r *Repository) GetStaffAvailabilityWindows(ctx context.Context) ([]domain.StaffAvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "from_date", "to_date").
		From("staff_availability_windows").
		OrderBy("staff_id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffAvailabilityWindows - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffAvailabilityWindows - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	windows := make([]domain.StaffAvailabilityWindow, 0)
	for rows.Next() {
		var window domain.StaffAvailabilityWindow
		if err := rows.Scan(&window.ID, &window.StaffID, &window.From, &window.To); err != nil {
			return nil, fmt.Errorf("%w: GetStaffAvailabilityWindows - scan row: %v", ErrScanRow, err)
		}
		windows = append(windows, window)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetStaffAvailabilityWindows - rows iteration: %v", ErrExecQuery, err)
	}

	return windows, nil
}

// GetStaffAvailabilityWindow возвращает период назначаемости одного сотрудника
func (r *Repository) GetStaffAvailabilityWindow(ctx context.Context, staffID string) (*domain.StaffAvailabilityWindow, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "staff_id", "from_date", "to_date").
		From("staff_availability_windows").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffAvailabilityWindow - build select query: %v", ErrBuildQuery, err)
	}

	var window domain.StaffAvailabilityWindow
	err = executor.QueryRowContext(ctx, query, args...).Scan(&window.ID, &window.StaffID, &window.From, &window.To)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetStaffAvailabilityWindow - scan row: %v", ErrScanRow, err)
	}

	return &window, nil
}

// UpsertStaffAvailabilityWindow создает или переписывает период назначаемости
// (один активный период на сотрудника)
func (r *Repository) UpsertStaffAvailabilityWindow(ctx context.Context, window domain.StaffAvailabilityWindow) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("staff_availability_windows").
		Columns("staff_id", "from_date", "to_date").
		Values(window.StaffID, window.From, window.To).
		Suffix("ON CONFLICT (staff_id) DO UPDATE SET from_date = EXCLUDED.from_date, to_date = EXCLUDED.to_date").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertStaffAvailabilityWindow - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertStaffAvailabilityWindow - execute upsert: %v", ErrExecQuery, err)
	}
	return nil
}

// DeleteStaffAvailabilityWindow удаляет период назначаемости сотрудника,
// помечая его полностью недоступным (fail closed в резолвере)
func (r *Repository) DeleteStaffAvailabilityWindow(ctx context.Context, staffID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("staff_availability_windows").
		Where(squirrel.Eq{"staff_id": staffID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: DeleteStaffAvailabilityWindow - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "DeleteStaffAvailabilityWindow")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, op string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, op, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - rows affected: %v", ErrExecQuery, op, err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
