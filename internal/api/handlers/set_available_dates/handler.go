package set_available_dates

import (
	"errors"
	"net/http"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule/models"
)

const msgInvalidRequestBody = "некорректное тело запроса"

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/schedule/available-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SetAvailableDateRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/available-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.SetAvailableDateRange(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/available-dates - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/available-dates - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/available-dates - Range replaced: %s - %s", req.From, req.To)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
