package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// HTTPNotificationSender posts notifications to the notification service.
type HTTPNotificationSender struct {
	url    string
	client *http.Client
}

var _ NotificationSender = new(HTTPNotificationSender)

func NewHTTPNotificationSender(url string, timeout time.Duration) *HTTPNotificationSender {
	return &HTTPNotificationSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPNotificationSender) SendNotification(ctx context.Context, n Notification) error {
	return postJSON(ctx, s.client, s.url, n)
}

// HTTPWhatsAppSender posts outbound messages to the whatsapp gateway.
type HTTPWhatsAppSender struct {
	url    string
	client *http.Client
}

var _ WhatsAppSender = new(HTTPWhatsAppSender)

func NewHTTPWhatsAppSender(url string, timeout time.Duration) *HTTPWhatsAppSender {
	return &HTTPWhatsAppSender{
		url:    url,
		client: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPWhatsAppSender) SendMessage(ctx context.Context, phone string, message string) error {
	payload := map[string]string{
		"phone":   phone,
		"message": message,
	}
	return postJSON(ctx, s.client, s.url, payload)
}

func postJSON(ctx context.Context, client *http.Client, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("gateway %s returned status %d", url, resp.StatusCode)
	}
	return nil
}
