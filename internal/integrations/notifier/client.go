package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Sender интерфейс отправки уведомлений
// Реализуется Client и Noop
type Sender interface {
	SendBookingConfirmed(ctx context.Context, n BookingNotification) error
}

// Client клиент для сервиса уведомлений
// Уведомления best-effort: недоступность сервиса логируется,
// но никогда не приводит к ошибке бронирования
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса уведомлений
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendBookingConfirmed отправляет уведомление о подтверждённом бронировании
func (c *Client) SendBookingConfirmed(ctx context.Context, n BookingNotification) error {
	url := fmt.Sprintf("%s/internal/notifications/booking-confirmed", c.baseURL)

	payload, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal notification: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	c.log.Info("Notification sent for booking id=%d", n.BookingID)
	return nil
}

// Noop заглушка, используется когда уведомления выключены в конфигурации
type Noop struct{}

// NewNoop создает заглушку отправителя уведомлений
func NewNoop() *Noop {
	return &Noop{}
}

// SendBookingConfirmed ничего не делает
func (n *Noop) SendBookingConfirmed(ctx context.Context, _ BookingNotification) error {
	return nil
}
