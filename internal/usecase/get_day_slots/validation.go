package get_day_slots

import (
	"fmt"

	"github.com/houseofbeauty/appointment-service/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}
	if req.Source != domain.SourcePublic && req.Source != domain.SourceDashboard {
		return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, req.Source)
	}
	return nil
}
