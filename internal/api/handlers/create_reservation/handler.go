package create_reservation

import (
	"errors"
	"net/http"

	"github.com/houseofbeauty/appointment-service/internal/api/handlers"
	"github.com/houseofbeauty/appointment-service/internal/domain"
	createReservation "github.com/houseofbeauty/appointment-service/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgInvalidDateOrTime   = "некорректная дата или время, ожидается YYYY-MM-DD и HH:MM"
	msgServiceNotFound     = "услуга не найдена"
	msgDateNotOfferable    = "выбранная дата недоступна для записи"
	msgNoCapacity          = "выбранный слот недоступен"
	msgPaymentRequired     = "запись возможна только после оплаты"
	msgPaymentNotConfirmed = "платеж не подтвержден"
)

type Handler struct {
	useCase CreateReservationUseCase
	source  domain.ReservationSource
	logger  Logger
}

// NewHandler создает handler создания записи. Монтируется дважды:
// на публичный виджет (source=public) и на панель сотрудника (source=dashboard).
func NewHandler(useCase CreateReservationUseCase, source domain.ReservationSource, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		source:  source,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(h.source)
	if err != nil {
		h.logger.Warn("POST /reservations - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createReservation.ErrInvalidInput):
			h.logger.Warn("POST /reservations - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createReservation.ErrServiceNotFound):
			h.logger.Warn("POST /reservations - Service not found: service_id=%d", req.ServiceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createReservation.ErrDateNotOfferable):
			h.logger.Warn("POST /reservations - Date not offerable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotOfferable)

		case errors.Is(err, createReservation.ErrNoCapacity):
			h.logger.Warn("POST /reservations - No capacity: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusConflict, msgNoCapacity)

		case errors.Is(err, createReservation.ErrPaymentRequired):
			h.logger.Warn("POST /reservations - Payment required: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentRequired)

		case errors.Is(err, createReservation.ErrPaymentNotConfirmed):
			h.logger.Warn("POST /reservations - Payment not confirmed: date=%s, time=%s", req.Date, req.TimeSlot)
			handlers.RespondError(w, http.StatusPaymentRequired, msgPaymentNotConfirmed)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: date=%s, time=%s, error=%v",
				req.Date, req.TimeSlot, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Повтор с тем же ключом идемпотентности возвращает прежнюю запись с 200
	status := http.StatusCreated
	if result.Replayed {
		status = http.StatusOK
	}

	h.logger.Info("POST /reservations - Reservation created: id=%d, date=%s, time=%s, replayed=%t",
		result.ID, req.Date, req.TimeSlot, result.Replayed)
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
