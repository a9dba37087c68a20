// Package vehicleid calls the vehicle identification service: OCR on
// registration document photos and direct VIN / HSN-TSN lookups.
package vehicleid

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

// identifications below this confidence are treated as unreadable input
const minConfidence = 0.7

type Client struct {
	identifyURL string
	http        *http.Client
	retry       apiclient.RetryConfig
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		identifyURL: baseURL + "/v1/identify",
		http:        httpClient,
		retry:       apiclient.DefaultRetryConfig(),
	}
}

type identifyReq struct {
	VIN      string `json:"vin,omitempty"`
	HSN      string `json:"hsn,omitempty"`
	TSN      string `json:"tsn,omitempty"`
	MediaURL string `json:"media_url,omitempty"`
}

type identifyResp struct {
	VIN        string  `json:"vin"`
	HSN        string  `json:"hsn"`
	TSN        string  `json:"tsn"`
	Make       string  `json:"make"`
	Model      string  `json:"model"`
	Year       int     `json:"year"`
	Confidence float64 `json:"confidence"`
}

func (c *Client) Identify(ctx context.Context, q conversation.VehicleQuery) (conversation.Vehicle, error) {
	body, err := json.Marshal(identifyReq{
		VIN: q.VIN, HSN: q.HSN, TSN: q.TSN, MediaURL: q.MediaURL,
	})
	if err != nil {
		return conversation.Vehicle{}, fmt.Errorf("marshal: %w", err)
	}

	var out identifyResp
	err = apiclient.DoWithRetry(ctx, c.retry, func() error {
		return c.post(ctx, body, &out)
	})
	if err != nil {
		return conversation.Vehicle{}, err
	}

	if out.Confidence < minConfidence {
		return conversation.Vehicle{}, conversation.ErrUncertain
	}
	return conversation.Vehicle{
		VIN:   out.VIN,
		HSN:   out.HSN,
		TSN:   out.TSN,
		Make:  out.Make,
		Model: out.Model,
		Year:  out.Year,
	}, nil
}

func (c *Client) post(ctx context.Context, body []byte, out *identifyResp) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.identifyURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("vehicle service: %w: %w", apiclient.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 == 5 {
		return fmt.Errorf("vehicle service %s: %w", resp.Status, apiclient.ErrServiceUnavailable)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("vehicle service %s: %s", resp.Status, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
