package upsert_special_day

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

// Handle PUT /api/v1/schedule/special-days
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.UpsertSpecialDayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /schedule/special-days - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.service.UpsertSpecialDay(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /schedule/special-days - Invalid input: date=%s, %v", req.Date, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /schedule/special-days - Failed: date=%s, error=%v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /schedule/special-days - Special day saved: date=%s", req.Date)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
