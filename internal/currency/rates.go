package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

// RateProvider looks up the live conversion rate from one currency into
// another. Implementations report failures as errors; the caller decides how
// to degrade.
type RateProvider interface {
	Rate(ctx context.Context, from, to string) (float64, error)
}

// Client fetches rates from an open.er-api.com style endpoint:
// GET {base}/{FROM} returning {"result": "success", "rates": {"INR": 85.4}}.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		HTTP:    &http.Client{Timeout: 10 * time.Second},
	}
}

type rateResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

func (c *Client) Rate(ctx context.Context, from, to string) (float64, error) {
	url := c.BaseURL + "/" + strings.ToUpper(from)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("rate lookup for %s: unexpected status %d", from, resp.StatusCode)
	}

	var body rateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return 0, fmt.Errorf("rate lookup for %s: %w", from, err)
	}
	if !strings.EqualFold(body.Result, "success") {
		return 0, fmt.Errorf("rate lookup for %s: provider result %q", from, body.Result)
	}
	rate, ok := body.Rates[strings.ToUpper(to)]
	if !ok {
		return 0, fmt.Errorf("rate lookup for %s: no rate for %s", from, to)
	}
	return rate, nil
}
