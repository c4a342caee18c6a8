package identity

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с сервисом идентификации персонала
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса идентификации
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListStaff возвращает всех активных сотрудников, принимающих записи
func (c *Client) ListStaff(ctx context.Context) ([]StaffMember, error) {
	url := fmt.Sprintf("%s/internal/staff?active=true", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var payload listStaffResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return payload.Staff, nil
}

// ListStaffIDs возвращает идентификаторы активных сотрудников.
// При недоступности сервиса возвращает ErrServiceDegraded, без ростера
// резолвер доступности работать не может (fail closed).
func (c *Client) ListStaffIDs(ctx context.Context) ([]string, error) {
	staff, err := c.ListStaff(ctx)
	if err != nil {
		c.log.Error("Identity service unavailable, staff roster cannot be resolved: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}

	ids := make([]string, 0, len(staff))
	for _, member := range staff {
		if member.Active {
			ids = append(ids, member.ID)
		}
	}

	c.log.Info("Fetched staff roster: %d active members", len(ids))
	return ids, nil
}
