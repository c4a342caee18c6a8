package get_days_off_overview

import (
	"net/http"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
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

// Handle GET /api/v1/staff/days-off
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetDaysOffOverview(r.Context())
	if err != nil {
		h.logger.Error("GET /staff/days-off - Failed to build overview: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
