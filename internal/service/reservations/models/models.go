package models

import (
	"errors"
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе записи
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// ListReservationsRequest запрос на получение записей с фильтрами
type ListReservationsRequest struct {
	StartDate   *string `json:"startDate,omitempty"`   // Начало периода (опционально)
	EndDate     *string `json:"endDate,omitempty"`     // Конец периода (опционально)
	Status      *string `json:"status,omitempty"`      // Фильтр по статусу (опционально)
	ClientEmail *string `json:"clientEmail,omitempty"` // Фильтр по email клиента (опционально)
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	var filter domain.ReservationsFilter

	if r.StartDate != nil {
		date, err := types.NewDateStringFromString(*r.StartDate)
		if err != nil {
			return filter, err
		}
		filter.StartDate = &date
	}
	if r.EndDate != nil {
		date, err := types.NewDateStringFromString(*r.EndDate)
		if err != nil {
			return filter, err
		}
		filter.EndDate = &date
	}
	if r.Status != nil {
		status := domain.ReservationStatus(*r.Status)
		if !domain.ValidStatus(status) {
			return filter, ErrInvalidStatus
		}
		filter.Status = &status
	}
	filter.ClientEmail = r.ClientEmail

	return filter, nil
}

// UpdateReservationServiceRequest запрос на смену услуги записи
type UpdateReservationServiceRequest struct {
	ServiceID int64 `json:"serviceId"`
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID              int64     `json:"id"`
	StaffID         *string   `json:"staffId,omitempty"`
	ServiceID       int64     `json:"serviceId"`
	ServiceName     string    `json:"serviceName"`
	Date            string    `json:"date"`
	TimeSlot        string    `json:"timeSlot"`
	Status          string    `json:"status"`
	ClientName      string    `json:"clientName"`
	ClientFirstname string    `json:"clientFirstname"`
	ClientEmail     string    `json:"clientEmail"`
	ClientPhone     string    `json:"clientPhone"`
	Description     *string   `json:"description,omitempty"`
	PaymentIntentID *string   `json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// ReservationListResponse список записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomainReservation конвертирует domain модель в response
func FromDomainReservation(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		StaffID:         r.StaffID,
		ServiceID:       r.ServiceID,
		ServiceName:     r.ServiceName,
		Date:            r.Date.String(),
		TimeSlot:        r.TimeSlot.String(),
		Status:          string(r.Status),
		ClientName:      r.ClientName,
		ClientFirstname: r.ClientFirstname,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Description:     r.Description,
		PaymentIntentID: r.PaymentIntentID,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// FromDomainReservations конвертирует список domain моделей в response
func FromDomainReservations(items []*domain.Reservation) *ReservationListResponse {
	resp := &ReservationListResponse{
		Reservations: make([]ReservationResponse, 0, len(items)),
		Total:        len(items),
	}
	for _, item := range items {
		resp.Reservations = append(resp.Reservations, FromDomainReservation(item))
	}
	return resp
}
