package payments

// Статусы платежного намерения у провайдера
const (
	IntentStatusSucceeded = "succeeded"
	IntentStatusCanceled  = "canceled"
)

// Intent модель платежного намерения
type Intent struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// Succeeded сообщает, завершен ли платеж успешно
func (i *Intent) Succeeded() bool {
	return i.Status == IntentStatusSucceeded
}

// ErrorResponse модель ошибки от провайдера платежей
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
