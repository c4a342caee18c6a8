package reservations

import "errors"

var (
	// ErrReservationNotFound запись не найдена
	ErrReservationNotFound = errors.New("reservations service: reservation not found")

	// ErrServiceNotFound услуга не найдена в каталоге
	ErrServiceNotFound = errors.New("reservations service: service not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("reservations service: invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("reservations service: internal error")
)
