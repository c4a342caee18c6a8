package update_reservation_status

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation_status: invalid input data")

	// ErrReservationNotFound запись не найдена
	ErrReservationNotFound = errors.New("update_reservation_status: reservation not found")

	// ErrNoCapacity возвращается, когда отмененную запись нельзя вернуть:
	// слот уже некому обслужить
	ErrNoCapacity = errors.New("update_reservation_status: no staff capacity for this slot")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation_status: internal error")
)
