// Package whatsapp is the outbound reply transport. Replies must arrive;
// typing signals are best effort.
package whatsapp

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"partsbot/internal/external/apiclient"
)

type Client struct {
	messagesURL string
	typingURL   string
	authToken   string
	sender      string
	http        *http.Client
	retry       apiclient.RetryConfig
}

type Config struct {
	BaseURL   string
	AuthToken string
	// Sender is the business phone number replies are sent from.
	Sender  string
	Timeout time.Duration
}

func New(cfg Config, httpClient *http.Client) *Client {
	if httpClient == nil {
		timeout := cfg.Timeout
		if timeout == 0 {
			timeout = 10 * time.Second
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	return &Client{
		messagesURL: cfg.BaseURL + "/v1/messages",
		typingURL:   cfg.BaseURL + "/v1/typing",
		authToken:   cfg.AuthToken,
		sender:      cfg.Sender,
		http:        httpClient,
		retry:       apiclient.DefaultRetryConfig(),
	}
}

type sendReq struct {
	From string `json:"from"`
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendMessage delivers one text reply, retrying transient transport
// failures.
func (c *Client) SendMessage(ctx context.Context, to, text string) error {
	body, err := json.Marshal(sendReq{From: c.sender, To: to, Body: text})
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	return apiclient.DoWithRetry(ctx, c.retry, func() error {
		return c.post(ctx, c.messagesURL, body)
	})
}

// SendTyping shows the customer a typing indicator while their message
// is processed. Failures are logged and swallowed; a missing indicator
// never blocks the reply.
func (c *Client) SendTyping(ctx context.Context, to string) {
	body, err := json.Marshal(map[string]string{"from": c.sender, "to": to})
	if err != nil {
		return
	}
	if err := c.post(ctx, c.typingURL, body); err != nil {
		slog.DebugContext(ctx, "typing signal failed", "error", err)
	}
}

func (c *Client) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.authToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.authToken)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("whatsapp transport: %w: %w", apiclient.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 == 5 || resp.StatusCode == http.StatusTooManyRequests {
		return fmt.Errorf("whatsapp transport %s: %w", resp.Status, apiclient.ErrServiceUnavailable)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("whatsapp transport %s: %s", resp.Status, string(raw))
	}
	return nil
}
