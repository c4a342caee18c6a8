package domain

import (
	"time"

	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// ReservationStatus represents the status of a reservation
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "pending"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
)

// ReservationSource показывает, откуда пришло бронирование
type ReservationSource string

const (
	// SourcePublic публичный виджет записи: оплата обязательна, статус pending
	SourcePublic ReservationSource = "public"
	// SourceDashboard запись из панели сотрудника: без оплаты, статус confirmed
	SourceDashboard ReservationSource = "dashboard"
)

// Reservation represents a booked appointment slot
type Reservation struct {
	ID        int64
	StaffID   *string // очищается при отмене: слот освобождается
	ServiceID int64
	Date      types.DateString
	TimeSlot  types.TimeString
	Status    ReservationStatus

	ClientName      string
	ClientFirstname string
	ClientEmail     string
	ClientPhone     string
	Description     *string

	// Денормализация для истории
	ServiceName string

	PaymentIntentID *string
	IdempotencyKey  string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the reservation blocks its slot
func (r *Reservation) IsActive() bool {
	return r.Status == StatusPending || r.Status == StatusConfirmed
}

// IsCancelled returns true if the reservation has been cancelled
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// HasAssignedStaff returns true if a staff member is assigned
func (r *Reservation) HasAssignedStaff() bool {
	return r.StaffID != nil && *r.StaffID != ""
}

// ValidStatus reports whether s is one of the known statuses
func ValidStatus(s ReservationStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// ReservationsFilter фильтр для выборки бронирований в панели сотрудника
type ReservationsFilter struct {
	StartDate   *types.DateString // Начало периода (опционально)
	EndDate     *types.DateString // Конец периода (опционально)
	Status      *ReservationStatus
	ClientEmail *string // Поиск по клиенту (автозаполнение формы)
}
