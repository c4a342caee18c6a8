package identity

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identity client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identity client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис идентификации недоступен и ростер сотрудников получить нельзя
	ErrServiceDegraded = errors.New("identity service unavailable: graceful degradation applied")
)
