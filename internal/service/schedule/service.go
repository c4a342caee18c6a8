package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/houseofbeauty/appointment-service/internal/availability"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	scheduleRepo "github.com/houseofbeauty/appointment-service/internal/infra/storage/schedule"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Service сервис расписания: CRUD фактов расписания и сборка
// снапшота для резолвера доступности
type Service struct {
	scheduleRepo    ScheduleRepository
	reservationRepo ReservationRepository
	identityClient  IdentityClient
	timeProvider    TimeProvider
	logger          Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	scheduleRepo ScheduleRepository,
	reservationRepo ReservationRepository,
	identityClient IdentityClient,
	logger Logger,
) *Service {
	return &Service{
		scheduleRepo:    scheduleRepo,
		reservationRepo: reservationRepo,
		identityClient:  identityClient,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// BuildSnapshot собирает все факты расписания, активные записи и ростер
// в единый срез для разрешения доступности одной даты.
// Все чтения выполняются здесь, сам резолвер работает только с памятью.
func (s *Service) BuildSnapshot(ctx context.Context, date types.DateString) (*availability.Snapshot, error) {
	today := types.NewDateString(s.timeProvider.Now())

	roster, err := s.identityClient.ListStaffIDs(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch staff roster: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
	}

	workingHours, err := s.scheduleRepo.GetWorkingHours(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch working hours: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - working hours: %v", ErrInternal, err)
	}

	specialDays, err := s.scheduleRepo.GetSpecialDays(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch special days: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - special days: %v", ErrInternal, err)
	}

	globalRange, err := s.scheduleRepo.GetAvailableDateRange(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch available date range: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - available date range: %v", ErrInternal, err)
	}

	weeklyDaysOff, err := s.scheduleRepo.GetStaffWeeklyDaysOff(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch weekly days off: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - weekly days off: %v", ErrInternal, err)
	}

	daysOff, err := s.scheduleRepo.GetStaffDaysOff(ctx, today)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch days off: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - days off: %v", ErrInternal, err)
	}

	windows, err := s.scheduleRepo.GetStaffAvailabilityWindows(ctx)
	if err != nil {
		s.logger.Error("BuildSnapshot: failed to fetch availability windows: %v", err)
		return nil, fmt.Errorf("%w: BuildSnapshot - availability windows: %v", ErrInternal, err)
	}

	var reservations []*domain.Reservation
	if !date.IsZero() {
		reservations, err = s.reservationRepo.ListActiveByDate(ctx, date)
		if err != nil {
			s.logger.Error("BuildSnapshot: failed to fetch reservations for %s: %v", date, err)
			return nil, fmt.Errorf("%w: BuildSnapshot - reservations: %v", ErrInternal, err)
		}
	}

	snapshot := &availability.Snapshot{
		Today:         today,
		GlobalRange:   globalRange,
		WeekdayClosed: make(map[time.Weekday]bool, len(workingHours)),
		WorkingHours:  make(map[time.Weekday]domain.WorkingHours, len(workingHours)),
		SpecialDays:   make(map[types.DateString]domain.SpecialDay, len(specialDays)),
		StaffRoster:   roster,
		WeeklyDaysOff: weeklyDaysOff,
		DaysOff:       daysOff,
		Windows:       windows,
		Reservations:  reservations,
	}

	for _, hours := range workingHours {
		snapshot.WorkingHours[hours.DayOfWeek] = hours
		snapshot.WeekdayClosed[hours.DayOfWeek] = hours.Closed
	}
	for _, day := range specialDays {
		snapshot.SpecialDays[day.Date] = day
	}

	s.logger.Info("BuildSnapshot: date=%s, roster=%d, reservations=%d, special_days=%d",
		date, len(roster), len(reservations), len(specialDays))

	return snapshot, nil
}

// GetOverview возвращает полный срез расписания бизнеса
func (s *Service) GetOverview(ctx context.Context) (*models.ScheduleOverviewResponse, error) {
	workingHours, err := s.scheduleRepo.GetWorkingHours(ctx)
	if err != nil {
		s.logger.Error("GetOverview: failed to fetch working hours: %v", err)
		return nil, fmt.Errorf("%w: GetOverview - working hours: %v", ErrInternal, err)
	}

	specialDays, err := s.scheduleRepo.GetSpecialDays(ctx)
	if err != nil {
		s.logger.Error("GetOverview: failed to fetch special days: %v", err)
		return nil, fmt.Errorf("%w: GetOverview - special days: %v", ErrInternal, err)
	}

	globalRange, err := s.scheduleRepo.GetAvailableDateRange(ctx)
	if err != nil {
		s.logger.Error("GetOverview: failed to fetch available date range: %v", err)
		return nil, fmt.Errorf("%w: GetOverview - available date range: %v", ErrInternal, err)
	}

	resp := &models.ScheduleOverviewResponse{
		WorkingHours: make([]models.WeekdayHoursResponse, 0, len(workingHours)),
		SpecialDays:  make([]models.SpecialDayResponse, 0, len(specialDays)),
		DateRange:    models.FromDomainDateRange(globalRange),
	}
	for _, hours := range workingHours {
		resp.WorkingHours = append(resp.WorkingHours, models.FromDomainWorkingHours(hours))
	}
	for _, day := range specialDays {
		resp.SpecialDays = append(resp.SpecialDays, models.FromDomainSpecialDay(day))
	}

	return resp, nil
}

// UpdateWeekdayHours изменяет часы работы одного дня недели
func (s *Service) UpdateWeekdayHours(ctx context.Context, req *models.UpdateWeekdayHoursRequest) error {
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in [0..6]", ErrInvalidInput)
	}
	if !req.Closed && !validHourRange(req.StartHour, req.EndHour) {
		return fmt.Errorf("%w: startHour must be before endHour, both within [%d..%d]",
			ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	if err := s.scheduleRepo.UpsertWorkingHours(ctx, req.ToDomain()); err != nil {
		s.logger.Error("UpdateWeekdayHours: repository error for day=%d: %v", req.DayOfWeek, err)
		return fmt.Errorf("%w: UpdateWeekdayHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateWeekdayHours: day=%d, hours=%d-%d, closed=%t",
		req.DayOfWeek, req.StartHour, req.EndHour, req.Closed)
	return nil
}

// UpsertSpecialDay создает или изменяет особый день
func (s *Service) UpsertSpecialDay(ctx context.Context, req *models.UpsertSpecialDayRequest) error {
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}
	if !validHourRange(req.OpeningHour, req.ClosingHour) {
		return fmt.Errorf("%w: openingHour must be before closingHour, both within [%d..%d]",
			ErrInvalidInput, domain.MinHour, domain.MaxHour)
	}

	day := domain.SpecialDay{Date: date, OpeningHour: req.OpeningHour, ClosingHour: req.ClosingHour}
	if err := s.scheduleRepo.UpsertSpecialDay(ctx, day); err != nil {
		s.logger.Error("UpsertSpecialDay: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: UpsertSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertSpecialDay: date=%s, hours=%d-%d", date, req.OpeningHour, req.ClosingHour)
	return nil
}

// DeleteSpecialDay удаляет особый день, возвращая дате обычные часы недели
func (s *Service) DeleteSpecialDay(ctx context.Context, rawDate string) error {
	date, err := models.ParseDate(rawDate)
	if err != nil {
		return fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	if err := s.scheduleRepo.DeleteSpecialDay(ctx, date); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteSpecialDay: repository error for date=%s: %v", date, err)
		return fmt.Errorf("%w: DeleteSpecialDay - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteSpecialDay: date=%s", date)
	return nil
}

// SetAvailableDateRange заменяет глобальный диапазон записи целиком
func (s *Service) SetAvailableDateRange(ctx context.Context, req *models.SetAvailableDateRangeRequest) error {
	from, err := models.ParseDate(req.From)
	if err != nil {
		return fmt.Errorf("%w: invalid from date: %v", ErrInvalidInput, err)
	}
	to, err := models.ParseDate(req.To)
	if err != nil {
		return fmt.Errorf("%w: invalid to date: %v", ErrInvalidInput, err)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to date must not precede from date", ErrInvalidInput)
	}

	dateRange := domain.AvailableDateRange{From: from, To: to}
	if err := s.scheduleRepo.ReplaceAvailableDateRange(ctx, dateRange); err != nil {
		s.logger.Error("SetAvailableDateRange: repository error: %v", err)
		return fmt.Errorf("%w: SetAvailableDateRange - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetAvailableDateRange: %s - %s", from, to)
	return nil
}

// UpsertStaffWeeklyDayOff создает или изменяет еженедельный выходной сотрудника
func (s *Service) UpsertStaffWeeklyDayOff(ctx context.Context, req *models.UpsertStaffWeeklyDayOffRequest) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if req.DayOfWeek < 0 || req.DayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in [0..6]", ErrInvalidInput)
	}

	dayOff := domain.StaffWeeklyDayOff{
		StaffID:   req.StaffID,
		DayOfWeek: time.Weekday(req.DayOfWeek),
		Available: req.Available,
	}
	if err := s.scheduleRepo.UpsertStaffWeeklyDayOff(ctx, dayOff); err != nil {
		s.logger.Error("UpsertStaffWeeklyDayOff: repository error for staff=%s: %v", req.StaffID, err)
		return fmt.Errorf("%w: UpsertStaffWeeklyDayOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertStaffWeeklyDayOff: staff=%s, day=%d, available=%t",
		req.StaffID, req.DayOfWeek, req.Available)
	return nil
}

// DeleteStaffWeeklyDayOff удаляет еженедельный выходной сотрудника
func (s *Service) DeleteStaffWeeklyDayOff(ctx context.Context, staffID string, dayOfWeek int) error {
	if staffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	if dayOfWeek < 0 || dayOfWeek > 6 {
		return fmt.Errorf("%w: dayOfWeek must be in [0..6]", ErrInvalidInput)
	}

	if err := s.scheduleRepo.DeleteStaffWeeklyDayOff(ctx, staffID, time.Weekday(dayOfWeek)); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteStaffWeeklyDayOff: repository error for staff=%s: %v", staffID, err)
		return fmt.Errorf("%w: DeleteStaffWeeklyDayOff - repository error: %v", ErrInternal, err)
	}

	return nil
}

// CreateStaffDayOff создает разовый выходной сотрудника
func (s *Service) CreateStaffDayOff(ctx context.Context, req *models.CreateStaffDayOffRequest) (*models.StaffDayOffResponse, error) {
	if req.StaffID == "" {
		return nil, fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	date, err := models.ParseDate(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	dayOff := &domain.StaffDayOff{StaffID: req.StaffID, Date: date}
	created, err := s.scheduleRepo.CreateStaffDayOff(ctx, dayOff)
	if err != nil {
		s.logger.Error("CreateStaffDayOff: repository error for staff=%s: %v", req.StaffID, err)
		return nil, fmt.Errorf("%w: CreateStaffDayOff - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaffDayOff: staff=%s, date=%s, id=%d", req.StaffID, date, created.ID)
	resp := models.FromDomainStaffDayOff(created)
	return &resp, nil
}

// DeleteStaffDayOff удаляет разовый выходной по ID
func (s *Service) DeleteStaffDayOff(ctx context.Context, id int64) error {
	if err := s.scheduleRepo.DeleteStaffDayOff(ctx, id); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteStaffDayOff: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: DeleteStaffDayOff - repository error: %v", ErrInternal, err)
	}

	return nil
}

// UpsertStaffWindow создает или изменяет период назначаемости сотрудника
func (s *Service) UpsertStaffWindow(ctx context.Context, req *models.UpsertStaffWindowRequest) error {
	if req.StaffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}
	from, err := models.ParseDate(req.From)
	if err != nil {
		return fmt.Errorf("%w: invalid from date: %v", ErrInvalidInput, err)
	}
	to, err := models.ParseDate(req.To)
	if err != nil {
		return fmt.Errorf("%w: invalid to date: %v", ErrInvalidInput, err)
	}
	if to.Before(from) {
		return fmt.Errorf("%w: to date must not precede from date", ErrInvalidInput)
	}

	window := domain.StaffAvailabilityWindow{StaffID: req.StaffID, From: from, To: to}
	if err := s.scheduleRepo.UpsertStaffAvailabilityWindow(ctx, window); err != nil {
		s.logger.Error("UpsertStaffWindow: repository error for staff=%s: %v", req.StaffID, err)
		return fmt.Errorf("%w: UpsertStaffWindow - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpsertStaffWindow: staff=%s, %s - %s", req.StaffID, from, to)
	return nil
}

// DeleteStaffWindow удаляет период назначаемости сотрудника
func (s *Service) DeleteStaffWindow(ctx context.Context, staffID string) error {
	if staffID == "" {
		return fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}

	if err := s.scheduleRepo.DeleteStaffAvailabilityWindow(ctx, staffID); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return ErrNotFound
		}
		s.logger.Error("DeleteStaffWindow: repository error for staff=%s: %v", staffID, err)
		return fmt.Errorf("%w: DeleteStaffWindow - repository error: %v", ErrInternal, err)
	}

	return nil
}

// GetDaysOffOverview возвращает сводку панели: все будущие разовые выходные
// и адреса сотрудников, у которых выходных не запланировано
func (s *Service) GetDaysOffOverview(ctx context.Context) (*models.DaysOffOverviewResponse, error) {
	today := types.NewDateString(s.timeProvider.Now())

	daysOff, err := s.scheduleRepo.GetStaffDaysOff(ctx, today)
	if err != nil {
		s.logger.Error("GetDaysOffOverview: failed to fetch days off: %v", err)
		return nil, fmt.Errorf("%w: GetDaysOffOverview - days off: %v", ErrInternal, err)
	}

	staff, err := s.identityClient.ListStaff(ctx)
	if err != nil {
		s.logger.Error("GetDaysOffOverview: failed to fetch staff roster: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrRosterUnavailable, err)
	}

	busy := make(map[string]bool, len(daysOff))
	for _, dayOff := range daysOff {
		busy[dayOff.StaffID] = true
	}

	resp := &models.DaysOffOverviewResponse{
		DaysOff:         make([]models.StaffDayOffResponse, 0, len(daysOff)),
		FreeStaffEmails: make([]string, 0, len(staff)),
	}
	for _, dayOff := range daysOff {
		off := dayOff
		resp.DaysOff = append(resp.DaysOff, models.FromDomainStaffDayOff(&off))
	}
	for _, member := range staff {
		if member.Active && !busy[member.ID] {
			resp.FreeStaffEmails = append(resp.FreeStaffEmails, member.Email)
		}
	}

	s.logger.Info("GetDaysOffOverview: days_off=%d, free_staff=%d", len(resp.DaysOff), len(resp.FreeStaffEmails))
	return resp, nil
}

// GetStaffAvailability возвращает все ограничения доступности одного сотрудника
func (s *Service) GetStaffAvailability(ctx context.Context, staffID string) (*models.StaffAvailabilityResponse, error) {
	if staffID == "" {
		return nil, fmt.Errorf("%w: staffId is required", ErrInvalidInput)
	}

	weeklyDaysOff, err := s.scheduleRepo.GetStaffWeeklyDaysOffByStaff(ctx, staffID)
	if err != nil {
		s.logger.Error("GetStaffAvailability: failed to fetch weekly days off for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffAvailability - weekly days off: %v", ErrInternal, err)
	}

	today := types.NewDateString(s.timeProvider.Now())
	allDaysOff, err := s.scheduleRepo.GetStaffDaysOff(ctx, today)
	if err != nil {
		s.logger.Error("GetStaffAvailability: failed to fetch days off for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffAvailability - days off: %v", ErrInternal, err)
	}

	window, err := s.scheduleRepo.GetStaffAvailabilityWindow(ctx, staffID)
	if err != nil && !errors.Is(err, scheduleRepo.ErrNotFound) {
		s.logger.Error("GetStaffAvailability: failed to fetch window for staff=%s: %v", staffID, err)
		return nil, fmt.Errorf("%w: GetStaffAvailability - window: %v", ErrInternal, err)
	}

	resp := &models.StaffAvailabilityResponse{
		StaffID:       staffID,
		WeeklyDaysOff: make([]models.StaffWeeklyDayOffResponse, 0, len(weeklyDaysOff)),
		DaysOff:       make([]models.StaffDayOffResponse, 0),
		Window:        models.FromDomainStaffWindow(window),
	}
	for _, dayOff := range weeklyDaysOff {
		resp.WeeklyDaysOff = append(resp.WeeklyDaysOff, models.FromDomainStaffWeeklyDayOff(dayOff))
	}
	for _, dayOff := range allDaysOff {
		if dayOff.StaffID == staffID {
			off := dayOff
			resp.DaysOff = append(resp.DaysOff, models.FromDomainStaffDayOff(&off))
		}
	}

	return resp, nil
}

// validHourRange проверяет границы часов: обе в допустимом диапазоне, начало раньше конца
func validHourRange(start, end int) bool {
	return start >= domain.MinHour && end <= domain.MaxHour && start < end
}
