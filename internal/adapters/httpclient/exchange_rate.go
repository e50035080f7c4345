package httpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
)

// ExchangeRateClient talks to an exchangerate-api v6 compatible provider:
// GET {baseURL}/{apiKey}/latest/{BASE}.
type ExchangeRateClient struct {
	http    *http.Client
	baseURL string
	apiKey  string
}

type apiResponse struct {
	Result          string             `json:"result"`
	ErrorType       string             `json:"error-type"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
}

func (c *ExchangeRateClient) GetExchangeRates(ctx context.Context, base string) (map[string]float64, error) {
	base = strings.ToUpper(strings.TrimSpace(base))

	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(c.pathSegments(base)...)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for currency %q: %w", base, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request for currency %q: %w", base, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code %d for currency %q: %s", resp.StatusCode, base, resp.Status)
	}

	var body apiResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response for currency %q: %w", base, err)
	}

	if body.Result != "success" {
		return nil, fmt.Errorf("api returned non-success result for currency %q: %s %s", base, body.Result, body.ErrorType)
	}
	if body.BaseCode != "" && !strings.EqualFold(body.BaseCode, base) {
		return nil, fmt.Errorf("api answered for %q instead of %q", body.BaseCode, base)
	}

	return body.ConversionRates, nil
}

func (c *ExchangeRateClient) pathSegments(base string) []string {
	if c.apiKey == "" {
		return []string{"latest", base}
	}
	return []string{c.apiKey, "latest", base}
}

func NewExchangeRateClient(httpClient *http.Client, baseURL, apiKey string) *ExchangeRateClient {
	return &ExchangeRateClient{http: httpClient, baseURL: baseURL, apiKey: apiKey}
}
