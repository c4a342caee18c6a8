package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrServiceNotFound возвращается, когда услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("create_reservation: service not found")

	// ErrDateNotOfferable возвращается, когда дата не предлагается к записи
	// (в прошлом, вне глобального диапазона или день закрыт)
	ErrDateNotOfferable = errors.New("create_reservation: date is not offerable")

	// ErrNoCapacity возвращается, когда слот некому обслужить
	ErrNoCapacity = errors.New("create_reservation: no staff capacity for this slot")

	// ErrPaymentRequired возвращается, когда публичный запрос пришёл без платежа
	ErrPaymentRequired = errors.New("create_reservation: payment intent is required")

	// ErrPaymentNotConfirmed возвращается, когда платеж не подтвержден провайдером
	ErrPaymentNotConfirmed = errors.New("create_reservation: payment is not confirmed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
