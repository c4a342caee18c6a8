package get_day_slots

import (
	"errors"
	"net/http"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	getDaySlots "github.com/houseofbeauty/appointment-service/internal/usecase/get_day_slots"
	"github.com/houseofbeauty/appointment-service/pkg/types"
)

const (
	msgMissingDate = "не указана дата, ожидается параметр date"
	msgInvalidDate = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	useCase GetDaySlotsUseCase
	source  domain.ReservationSource
	logger  Logger
}

// NewHandler создает handler ленты слотов. Один и тот же handler
// монтируется на публичный и панельный маршруты с разным source.
func NewHandler(useCase GetDaySlotsUseCase, source domain.ReservationSource, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		source:  source,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	rawDate := r.URL.Query().Get("date")
	if rawDate == "" {
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	date, err := types.NewDateStringFromString(rawDate)
	if err != nil {
		h.logger.Warn("GET /slots - Invalid date %q: %v", rawDate, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getDaySlots.Request{Date: date, Source: h.source})
	if err != nil {
		switch {
		case errors.Is(err, getDaySlots.ErrInvalidInput):
			h.logger.Warn("GET /slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /slots - Failed to resolve slots: date=%s, error=%v", date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
