package models

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// Request модели

// UpdateWeekdayHoursRequest запрос на изменение часов одного дня недели
type UpdateWeekdayHoursRequest struct {
	DayOfWeek int  `json:"dayOfWeek"`
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
	Closed    bool `json:"closed"`
}

// ToDomain конвертирует request в domain модель
func (r *UpdateWeekdayHoursRequest) ToDomain() domain.WorkingHours {
	return domain.WorkingHours{
		DayOfWeek: time.Weekday(r.DayOfWeek),
		StartHour: r.StartHour,
		EndHour:   r.EndHour,
		Closed:    r.Closed,
	}
}

// UpsertSpecialDayRequest запрос на создание или изменение особого дня
type UpsertSpecialDayRequest struct {
	Date        string `json:"date"`
	OpeningHour int    `json:"openingHour"`
	ClosingHour int    `json:"closingHour"`
}

// SetAvailableDateRangeRequest запрос на замену глобального диапазона записи
type SetAvailableDateRangeRequest struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// UpsertStaffWeeklyDayOffRequest запрос на еженедельный выходной сотрудника
type UpsertStaffWeeklyDayOffRequest struct {
	StaffID   string `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	Available bool   `json:"available"`
}

// CreateStaffDayOffRequest запрос на разовый выходной сотрудника
type CreateStaffDayOffRequest struct {
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
}

// UpsertStaffWindowRequest запрос на период назначаемости сотрудника
type UpsertStaffWindowRequest struct {
	StaffID string `json:"staffId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// Response модели

// WeekdayHoursResponse часы одного дня недели
type WeekdayHoursResponse struct {
	DayOfWeek int  `json:"dayOfWeek"`
	StartHour int  `json:"startHour"`
	EndHour   int  `json:"endHour"`
	Closed    bool `json:"closed"`
}

// SpecialDayResponse особый день
type SpecialDayResponse struct {
	Date        string `json:"date"`
	OpeningHour int    `json:"openingHour"`
	ClosingHour int    `json:"closingHour"`
}

// DateRangeResponse глобальный диапазон записи
type DateRangeResponse struct {
	From string `json:"from"`
	To   string `json:"to"`
}

// StaffWeeklyDayOffResponse еженедельный выходной сотрудника
type StaffWeeklyDayOffResponse struct {
	StaffID   string `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	Available bool   `json:"available"`
}

// StaffDayOffResponse разовый выходной сотрудника
type StaffDayOffResponse struct {
	ID      int64  `json:"id"`
	StaffID string `json:"staffId"`
	Date    string `json:"date"`
}

// StaffWindowResponse период назначаемости сотрудника
type StaffWindowResponse struct {
	ID      int64  `json:"id"`
	StaffID string `json:"staffId"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// ScheduleOverviewResponse полный срез расписания бизнеса
type ScheduleOverviewResponse struct {
	WorkingHours []WeekdayHoursResponse `json:"workingHours"`
	SpecialDays  []SpecialDayResponse   `json:"specialDays"`
	DateRange    *DateRangeResponse     `json:"dateRange,omitempty"`
}

// DaysOffOverviewResponse сводка для панели: все будущие разовые выходные
// и адреса сотрудников, у которых выходных не запланировано
type DaysOffOverviewResponse struct {
	DaysOff         []StaffDayOffResponse `json:"daysOff"`
	FreeStaffEmails []string              `json:"freeStaffEmails"`
}

// StaffAvailabilityResponse все ограничения доступности одного сотрудника
type StaffAvailabilityResponse struct {
	StaffID       string                      `json:"staffId"`
	WeeklyDaysOff []StaffWeeklyDayOffResponse `json:"weeklyDaysOff"`
	DaysOff       []StaffDayOffResponse       `json:"daysOff"`
	Window        *StaffWindowResponse        `json:"window,omitempty"`
}

// FromDomainWorkingHours конвертирует domain модель в response
func FromDomainWorkingHours(hours domain.WorkingHours) WeekdayHoursResponse {
	return WeekdayHoursResponse{
		DayOfWeek: int(hours.DayOfWeek),
		StartHour: hours.StartHour,
		EndHour:   hours.EndHour,
		Closed:    hours.Closed,
	}
}

// FromDomainSpecialDay конвертирует domain модель в response
func FromDomainSpecialDay(day domain.SpecialDay) SpecialDayResponse {
	return SpecialDayResponse{
		Date:        day.Date.String(),
		OpeningHour: day.OpeningHour,
		ClosingHour: day.ClosingHour,
	}
}

// FromDomainDateRange конвертирует domain модель в response
func FromDomainDateRange(dateRange *domain.AvailableDateRange) *DateRangeResponse {
	if dateRange == nil {
		return nil
	}
	return &DateRangeResponse{
		From: dateRange.From.String(),
		To:   dateRange.To.String(),
	}
}

// FromDomainStaffWeeklyDayOff конвертирует domain модель в response
func FromDomainStaffWeeklyDayOff(dayOff domain.StaffWeeklyDayOff) StaffWeeklyDayOffResponse {
	return StaffWeeklyDayOffResponse{
		StaffID:   dayOff.StaffID,
		DayOfWeek: int(dayOff.DayOfWeek),
		Available: dayOff.Available,
	}
}

// FromDomainStaffDayOff конвертирует domain модель в response
func FromDomainStaffDayOff(dayOff *domain.StaffDayOff) StaffDayOffResponse {
	return StaffDayOffResponse{
		ID:      dayOff.ID,
		StaffID: dayOff.StaffID,
		Date:    dayOff.Date.String(),
	}
}

// FromDomainStaffWindow конвертирует domain модель в response
func FromDomainStaffWindow(window *domain.StaffAvailabilityWindow) *StaffWindowResponse {
	if window == nil {
		return nil
	}
	return &StaffWindowResponse{
		ID:      window.ID,
		StaffID: window.StaffID,
		From:    window.From.String(),
		To:      window.To.String(),
	}
}

// ParseDate парсит дату запроса в DateString
func ParseDate(s string) (types.DateString, error) {
	return types.NewDateStringFromString(s)
}
