package create_reservation

import (
	"fmt"
	"strings"

	"github.com/houseofbeauty/appointment-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Source != domain.SourcePublic && req.Source != domain.SourceDashboard {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if req.TimeSlot.IsZero() {
		return fmt.Errorf("%w: timeSlot is required", ErrInvalidInput)
	}
	if err := req.TimeSlot.Validate(); err != nil {
		return fmt.Errorf("%w: invalid timeSlot format: %v", ErrInvalidInput, err)
	}

	if req.ServiceID <= 0 {
		return fmt.Errorf("%w: serviceId must be positive", ErrInvalidInput)
	}

	if err := validateClientField("clientName", req.ClientName); err != nil {
		return err
	}
	if err := validateClientField("clientFirstname", req.ClientFirstname); err != nil {
		return err
	}
	if err := validateClientField("clientPhone", req.ClientPhone); err != nil {
		return err
	}
	if err := validateEmail(req.ClientEmail); err != nil {
		return err
	}

	if req.Description != nil && len(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description exceeds %d characters", ErrInvalidInput, domain.MaxDescriptionLength)
	}

	// Публичный виджет бронирует только после оплаты
	if req.Source == domain.SourcePublic && (req.PaymentIntentID == nil || *req.PaymentIntentID == "") {
		return ErrPaymentRequired
	}

	return nil
}

func validateClientField(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if len(value) > domain.MaxClientFieldLength {
		return fmt.Errorf("%w: %s exceeds %d characters", ErrInvalidInput, name, domain.MaxClientFieldLength)
	}
	return nil
}

func validateEmail(email string) error {
	if err := validateClientField("clientEmail", email); err != nil {
		return err
	}
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return fmt.Errorf("%w: clientEmail is malformed", ErrInvalidInput)
	}
	return nil
}
