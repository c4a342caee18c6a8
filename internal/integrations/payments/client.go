package payments

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент провайдера платежей (Stripe-совместимый API)
type Client struct {
	baseURL    string
	secretKey  string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента провайдера платежей
func NewClient(baseURL, secretKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:   baseURL,
		secretKey: secretKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetIntent возвращает текущее состояние платежного намерения
func (c *Client) GetIntent(ctx context.Context, intentID string) (*Intent, error) {
	reqURL := fmt.Sprintf("%s/v1/payment_intents/%s", c.baseURL, url.PathEscape(intentID))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+c.secretKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrIntentNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var intent Intent
	if err := json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &intent, nil
}

// VerifyIntentSucceeded проверяет, что платеж завершен успешно.
// Запись не создается, пока провайдер не подтвердил статус succeeded.
func (c *Client) VerifyIntentSucceeded(ctx context.Context, intentID string) (*Intent, error) {
	c.log.Info("Verifying payment intent %s", intentID)

	intent, err := c.GetIntent(ctx, intentID)
	if err != nil {
		return nil, err
	}

	if !intent.Succeeded() {
		c.log.Warn("Payment intent %s has status %q, reservation rejected", intentID, intent.Status)
		return intent, nil
	}

	c.log.Info("Payment intent %s confirmed: amount=%d %s", intentID, intent.Amount, intent.Currency)
	return intent, nil
}
