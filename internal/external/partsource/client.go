// Package partsource calls the offer sourcing service that aggregates
// vendor prices, stock and delivery estimates for a part request.
package partsource

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"partsbot/internal/domain/conversation"
	"partsbot/internal/domain/offer"
	"partsbot/internal/external/apiclient"
)

type Client struct {
	offersURL string
	http      *http.Client
	retry     apiclient.RetryConfig
}

func New(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		offersURL: baseURL + "/v1/offers",
		http:      httpClient,
		retry:     apiclient.DefaultRetryConfig(),
	}
}

type offersReq struct {
	VIN             string `json:"vin,omitempty"`
	HSN             string `json:"hsn,omitempty"`
	TSN             string `json:"tsn,omitempty"`
	Make            string `json:"make,omitempty"`
	Model           string `json:"model,omitempty"`
	Year            int    `json:"year,omitempty"`
	PartDescription string `json:"part_description"`
}

type offersResp struct {
	Offers []offer.Offer `json:"offers"`
}

func (c *Client) FetchOffers(ctx context.Context, v conversation.Vehicle, partDescription string) ([]offer.Offer, error) {
	body, err := json.Marshal(offersReq{
		VIN: v.VIN, HSN: v.HSN, TSN: v.TSN,
		Make: v.Make, Model: v.Model, Year: v.Year,
		PartDescription: partDescription,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal: %w", err)
	}

	var out offersResp
	err = apiclient.DoWithRetry(ctx, c.retry, func() error {
		return c.post(ctx, body, &out)
	})
	if err != nil {
		return nil, err
	}
	return out.Offers, nil
}

func (c *Client) post(ctx context.Context, body []byte, out *offersResp) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.offersURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("part source: %w: %w", apiclient.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()
	raw, _ := io.ReadAll(resp.Body)

	if resp.StatusCode/100 == 5 {
		return fmt.Errorf("part source %s: %w", resp.Status, apiclient.ErrServiceUnavailable)
	}
	if resp.StatusCode/100 != 2 {
		return fmt.Errorf("part source %s: %s", resp.Status, string(raw))
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
