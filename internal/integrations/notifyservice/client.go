package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Client клиент внешнего сервиса уведомлений (email, push)
// Доставка fire-and-forget: отказ сервиса уведомлений не влияет на операции
type Client struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		timeout: timeout,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Publish отправляет событие сервису уведомлений в фоне
// Реализует notify.Notifier; ошибки доставки только логируются
func (c *Client) Publish(event string, payload interface{}) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
		defer cancel()

		if err := c.send(ctx, event, payload); err != nil {
			c.log.Error("notifyservice: failed to deliver event %s: %v", event, err)
			return
		}
		c.log.Info("notifyservice: delivered event %s", event)
	}()
}

func (c *Client) send(ctx context.Context, event string, payload interface{}) error {
	body, err := json.Marshal(Event{
		Type:      event,
		Data:      payload,
		Timestamp: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("%w: failed to marshal event: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/events", c.baseURL)

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

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d", ErrInvalidResponse, resp.StatusCode)
	}

	return nil
}
