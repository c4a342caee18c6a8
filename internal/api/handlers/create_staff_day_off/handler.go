package create_staff_day_off

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

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

// Handle POST /api/v1/staff/{staffId}/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID := vars["staffId"]

	var req models.CreateStaffDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StaffID = staffID

	result, err := h.service.CreateStaffDayOff(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("POST /staff/{id}/days-off - Invalid input: staff=%s, %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("POST /staff/{id}/days-off - Failed: staff=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /staff/{id}/days-off - Day off created: staff=%s, date=%s, id=%d",
		staffID, req.Date, result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
