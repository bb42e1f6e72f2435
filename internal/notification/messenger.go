package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Delivery is one rendered message for one recipient.
type Delivery struct {
	UserID      string
	Destination string
	Text        string
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, delivery Delivery) error
}

// MessengerSender posts deliveries to the messenger gateway (POST {endpoint}/messages).
type MessengerSender struct {
	endpoint string
	client   *http.Client
}

// NewMessengerSender returns a sender for the gateway at endpoint.
func NewMessengerSender(endpoint string, client *http.Client) *MessengerSender {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}
	return &MessengerSender{
		endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		client:   client,
	}
}

func (m *MessengerSender) Send(ctx context.Context, delivery Delivery) error {
	userID := strings.TrimSpace(delivery.UserID)
	if userID == "" {
		return errors.New("userID is required")
	}
	if m.endpoint == "" {
		return errors.New("messenger endpoint is not configured")
	}

	payload := map[string]any{
		"userId": userID,
		"text":   delivery.Text,
	}
	if dest := strings.TrimSpace(delivery.Destination); dest != "" {
		payload["destination"] = dest
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("메신저 전송 페이로드 생성 실패: %w", err)
	}

	timeout := m.client.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.endpoint+"/messages", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("메신저 전송 요청 생성 실패: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := m.client.Do(req)
	if err != nil {
		return fmt.Errorf("메신저 전송 요청 실패: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode >= 400 {
		message, _ := io.ReadAll(io.LimitReader(res.Body, 1<<16))
		return fmt.Errorf("메신저 전송 오류: status=%d body=%s", res.StatusCode, strings.TrimSpace(string(message)))
	}
	return nil
}

// sendWithRetry tries up to attempts times, sleeping delay between tries.
func sendWithRetry(ctx context.Context, sender Sender, delivery Delivery, attempts int, delay time.Duration) (int, error) {
	if attempts < 1 {
		attempts = 1
	}
	var lastErr error
	for i := 0; i < attempts; i++ {
		if err := sender.Send(ctx, delivery); err == nil {
			return i + 1, nil
		} else {
			lastErr = err
		}
		if i+1 < attempts && delay > 0 {
			select {
			case <-ctx.Done():
				return i + 1, ctx.Err()
			case <-time.After(delay):
			}
		}
	}
	return attempts, lastErr
}
