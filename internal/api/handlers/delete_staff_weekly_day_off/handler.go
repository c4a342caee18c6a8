package delete_staff_weekly_day_off

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule"
)

const (
	msgInvalidDay = "некорректный день недели, ожидается 0-6"
	msgNotFound   = "еженедельный выходной не найден"
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

// Handle DELETE /api/v1/staff/{staffId}/weekly-days-off/{day}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID := vars["staffId"]

	day, err := strconv.Atoi(vars["day"])
	if err != nil {
		h.logger.Warn("DELETE /staff/{id}/weekly-days-off/{day} - Invalid day: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDay)
		return
	}

	if err := h.service.DeleteStaffWeeklyDayOff(r.Context(), staffID, day); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("DELETE /staff/{id}/weekly-days-off/{day} - Invalid input: staff=%s, %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidDay)

		case errors.Is(err, schedule.ErrNotFound):
			h.logger.Warn("DELETE /staff/{id}/weekly-days-off/{day} - Not found: staff=%s, day=%d", staffID, day)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{id}/weekly-days-off/{day} - Failed: staff=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/weekly-days-off/{day} - Removed: staff=%s, day=%d", staffID, day)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
