// Package notify provides Notifier implementations for the dispatcher.
// LogNotifier is the development default; HTTPNotifier posts to a hosted mail
// relay's JSON endpoint.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/nexline/accounts-api/internal/core/ports"
)

// LogNotifier writes notifications to the log instead of delivering them.
type LogNotifier struct {
	log zerolog.Logger
}

func NewLogNotifier(log zerolog.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (n *LogNotifier) Send(_ context.Context, msg ports.Notification) error {
	n.log.Info().
		Str("recipient", msg.Recipient).
		Str("subject", msg.Subject).
		Msg("notification (log only)")
	return nil
}

const defaultSendTimeout = 10 * time.Second

// HTTPNotifier delivers notifications by POSTing JSON to a mail relay
// endpoint authenticated with a bearer API key.
type HTTPNotifier struct {
	endpoint string
	apiKey   string
	sender   string
	client   *http.Client
}

func NewHTTPNotifier(endpoint, apiKey, sender string) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint: endpoint,
		apiKey:   apiKey,
		sender:   sender,
		client:   &http.Client{Timeout: defaultSendTimeout},
	}
}

type mailPayload struct {
	To      string `json:"to"`
	From    string `json:"from"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

func (n *HTTPNotifier) Send(ctx context.Context, msg ports.Notification) error {
	body, err := json.Marshal(mailPayload{
		To:      msg.Recipient,
		From:    n.sender,
		Subject: msg.Subject,
		Body:    msg.Body,
	})
	if err != nil {
		return fmt.Errorf("encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build notification request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.apiKey)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("send notification: relay returned %d", resp.StatusCode)
	}
	return nil
}
