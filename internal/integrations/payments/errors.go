package payments

import "errors"

var (
	// ErrIntentNotFound платежное намерение не найдено у провайдера
	ErrIntentNotFound = errors.New("payment intent not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("payments client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от провайдера
	ErrInvalidResponse = errors.New("payments client: invalid response")
)
