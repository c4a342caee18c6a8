package create_reservation

import (
	"time"

	"github.com/houseofbeauty/appointment-service/internal/domain"
	createReservation "github.com/houseofbeauty/appointment-service/internal/usecase/create_reservation"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Date            string  `json:"date"`     // "2025-10-15"
	TimeSlot        string  `json:"timeSlot"` // "10:00"
	ServiceID       int64   `json:"serviceId"`
	ClientName      string  `json:"clientName"`
	ClientFirstname string  `json:"clientFirstname"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	Description     *string `json:"description,omitempty"`
	PaymentIntentID *string `json:"paymentIntentId,omitempty"`
	IdempotencyKey  string  `json:"idempotencyKey,omitempty"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID              int64   `json:"id"`
	StaffID         *string `json:"staffId,omitempty"`
	ServiceID       int64   `json:"serviceId"`
	ServiceName     string  `json:"serviceName"`
	Date            string  `json:"date"`
	TimeSlot        string  `json:"timeSlot"`
	Status          string  `json:"status"`
	ClientName      string  `json:"clientName"`
	ClientFirstname string  `json:"clientFirstname"`
	ClientEmail     string  `json:"clientEmail"`
	ClientPhone     string  `json:"clientPhone"`
	Description     *string `json:"description,omitempty"`
	IdempotencyKey  string  `json:"idempotencyKey"`
	CreatedAt       string  `json:"createdAt"`
	UpdatedAt       string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest(source domain.ReservationSource) (*createReservation.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	timeSlot, err := types.NewTimeStringFromString(r.TimeSlot)
	if err != nil {
		return nil, err
	}

	return &createReservation.Request{
		Source:          source,
		Date:            date,
		TimeSlot:        timeSlot,
		ServiceID:       r.ServiceID,
		ClientName:      r.ClientName,
		ClientFirstname: r.ClientFirstname,
		ClientEmail:     r.ClientEmail,
		ClientPhone:     r.ClientPhone,
		Description:     r.Description,
		PaymentIntentID: r.PaymentIntentID,
		IdempotencyKey:  r.IdempotencyKey,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	return &ReservationResponse{
		ID:              resp.ID,
		StaffID:         resp.StaffID,
		ServiceID:       resp.ServiceID,
		ServiceName:     resp.ServiceName,
		Date:            resp.Date.String(),
		TimeSlot:        resp.TimeSlot.String(),
		Status:          resp.Status,
		ClientName:      resp.ClientName,
		ClientFirstname: resp.ClientFirstname,
		ClientEmail:     resp.ClientEmail,
		ClientPhone:     resp.ClientPhone,
		Description:     resp.Description,
		IdempotencyKey:  resp.IdempotencyKey,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}
