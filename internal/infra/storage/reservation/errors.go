package reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда бронирование не найдено
	ErrReservationNotFound = errors.New("reservation.repository: reservation not found")

	// ErrSlotTaken возвращается при нарушении уникальности (staff_id, booking_date, time_slot):
	// параллельное бронирование успело занять слот первым
	ErrSlotTaken = errors.New("reservation.repository: slot already taken")

	// ErrDuplicateIdempotencyKey возвращается при повторной вставке с тем же ключом идемпотентности
	ErrDuplicateIdempotencyKey = errors.New("reservation.repository: duplicate idempotency key")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("reservation.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("reservation.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("reservation.repository: failed to scan row")
)
