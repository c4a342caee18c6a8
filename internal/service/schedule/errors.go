package schedule

import "errors"

var (
	// ErrNotFound запрошенный элемент расписания не найден
	ErrNotFound = errors.New("schedule service: not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("schedule service: invalid input data")

	// ErrRosterUnavailable ростер сотрудников получить не удалось,
	// доступность разрешить нельзя
	ErrRosterUnavailable = errors.New("schedule service: staff roster unavailable")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("schedule service: internal error")
)
