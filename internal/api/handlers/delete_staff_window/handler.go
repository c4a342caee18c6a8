package delete_staff_window

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/service/schedule"
)

const msgNotFound = "период назначаемости не найден"

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

// Handle DELETE /api/v1/staff/{staffId}/window
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID := vars["staffId"]

	if err := h.service.DeleteStaffWindow(r.Context(), staffID); err != nil {
		switch {
		case errors.Is(err, schedule.ErrNotFound):
			h.logger.Warn("DELETE /staff/{id}/window - Not found: staff=%s", staffID)
			handlers.RespondNotFound(w, msgNotFound)

		default:
			h.logger.Error("DELETE /staff/{id}/window - Failed: staff=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /staff/{id}/window - Window removed: staff=%s", staffID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
