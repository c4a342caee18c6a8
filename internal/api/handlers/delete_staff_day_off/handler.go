package delete_staff_day_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule"
)

const (
	msgInvalidDayOffID = "некорректный ID выходного"
	msgNotFound        = "выходной не найден"
)

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

// Handle DELETE /api/v1/staff/days-off/{dayOffId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	dayOffID, err := strconv.ParseInt(vars["dayOffId"], 10, 64)
	if err != nil {
		h.logger.Warn("DELETE /staff/days-off/{id} - Invalid day off ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDayOffID)
		return
	}

	if err := h.service.DeleteStaffDayOff(r.Context(), dayOffID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotFound):
			h.logger.Warn("DELETE /staff/days-off/{id} - Not found: id=%d", dayOffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/days-off/{id} - Failed: id=%d, error=%v", dayOffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/days-off/{id} - Day off removed: id=%d", dayOffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
