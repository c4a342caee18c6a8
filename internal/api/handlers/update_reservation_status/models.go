package update_reservation_status

import (
	"time"

	updateStatus "github.com/houseofbeauty/appointment-service/internal/usecase/update_reservation_status"
)

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// StatusResponse HTTP response model
type StatusResponse struct {
	ID        int64   `json:"id"`
	StaffID   *string `json:"staffId,omitempty"`
	Date      string  `json:"date"`
	TimeSlot  string  `json:"timeSlot"`
	Status    string  `json:"status"`
	UpdatedAt string  `json:"updatedAt"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateStatus.Response) *StatusResponse {
	return &StatusResponse{
		ID:        resp.ID,
		StaffID:   resp.StaffID,
		Date:      resp.Date.String(),
		TimeSlot:  resp.TimeSlot.String(),
		Status:    resp.Status,
		UpdatedAt: resp.UpdatedAt.Format(time.RFC3339),
	}
}
