package upsert_staff_weekly_day_off

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

// Handle PUT /api/v1/staff/{staffId}/weekly-days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	staffID := vars["staffId"]

	var req models.UpsertStaffWeeklyDayOffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /staff/{id}/weekly-days-off - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.StaffID = staffID

	if err := h.service.UpsertStaffWeeklyDayOff(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /staff/{id}/weekly-days-off - Invalid input: staff=%s, %v", staffID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PUT /staff/{id}/weekly-days-off - Failed: staff=%s, error=%v", staffID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /staff/{id}/weekly-days-off - Saved: staff=%s, day=%d, available=%t",
		staffID, req.DayOfWeek, req.Available)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
