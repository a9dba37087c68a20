// Package assist calls the model-backed answering service used for
// general customer questions that the state machine cannot resolve.
package assist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/external/apiclient"
)

type Client struct {
	answerURL string
	http      *http.Client
	retry     apiclient.RetryConfig
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		answerURL: baseURL + "/v1/answer",
		http:      httpClient,
		retry:     apiclient.DefaultRetryConfig(),
	}
}

type answerReq struct {
	Question      string                `json:"question"`
	Language      string                `json:"language"`
	Vehicle       *conversation.Vehicle `json:"vehicle,omitempty"`
	MissingFields []string              `json:"missing_fields,omitempty"`
}

type answerResp struct {
	Answer string `json:"answer"`
}

func (c *Client) Answer(ctx context.Context, q conversation.Question) (string, error) {
	body, err := json.Marshal(answerReq{
		Question:      q.Text,
		Language:      string(q.Language),
		Vehicle:       q.Vehicle,
		MissingFields: q.MissingFields,
	})
	if err != nil {
		return "", fmt.Errorf("marshal: %w", err)
	}

	var out answerResp
	err = apiclient.DoWithRetry(ctx, c.retry, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.answerURL, bytes.NewReader(body))
		if err != nil {
			return fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := c.http.Do(req)
		if err != nil {
			return fmt.Errorf("assist: %w: %w", apiclient.ErrServiceUnavailable, err)
		}
		defer resp.Body.Close()
		raw, _ := io.ReadAll(resp.Body)

		if resp.StatusCode/100 == 5 {
			return fmt.Errorf("assist %s: %w", resp.Status, apiclient.ErrServiceUnavailable)
		}
		if resp.StatusCode/100 != 2 {
			return fmt.Errorf("assist %s: %s", resp.Status, string(raw))
		}
		if err := json.Unmarshal(raw, &out); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return "", err
	}
	return out.Answer, nil
}
