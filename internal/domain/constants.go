package domain

// Default day window, used when neither a SpecialDay nor WorkingHours
// exist for a date. Matches the dashboard's rendered hours.
const (
	DefaultOpenHour  = 9
	DefaultCloseHour = 21
)

// Business validation constants
const (
	MinHour              = 0
	MaxHour              = 23
	SlotDurationMinutes  = 60 // фиксированный шаг сетки слотов
	MaxDescriptionLength = 500
	MaxClientFieldLength = 120
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses статусы, при которых бронирование занимает слот.
// Используются в фильтрах репозитория и в резолвере доступности.
var ActiveStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
}
