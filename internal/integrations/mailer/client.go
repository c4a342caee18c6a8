package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент почтового релея. Все отправки best-effort:
// неудача доставки письма никогда не откатывает запись.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента почтового релея
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendReservationConfirmed отправляет письмо о подтвержденной записи
func (c *Client) SendReservationConfirmed(ctx context.Context, email ReservationEmail) error {
	return c.send(ctx, templateConfirmed, email)
}

// SendReservationCancelled отправляет письмо об отмене записи
func (c *Client) SendReservationCancelled(ctx context.Context, email ReservationEmail) error {
	return c.send(ctx, templateCancelled, email)
}

func (c *Client) send(ctx context.Context, template string, email ReservationEmail) error {
	url := fmt.Sprintf("%s/internal/emails/send", c.baseURL)

	body, err := json.Marshal(sendRequest{Template: template, Payload: email})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted:
		c.log.Info("Email %q queued for %s", template, email.To)
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}
