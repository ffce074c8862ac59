// Package quote translates ticker symbols into current market prices,
// absorbing external-service latency and rate limits behind a time-bounded
// cache with per-symbol fetch coalescing.
package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

// RawQuote is the payload returned by the external quote source. A Current
// of exactly zero means the source has no quote for the symbol.
type RawQuote struct {
	Current       decimal.Decimal `json:"c"`
	High          decimal.Decimal `json:"h"`
	Low           decimal.Decimal `json:"l"`
	Open          decimal.Decimal `json:"o"`
	PreviousClose decimal.Decimal `json:"pc"`
}

// Source fetches a raw quote for a single symbol from an external service.
type Source interface {
	FetchPrice(ctx context.Context, symbol string) (RawQuote, error)
}

// Client is a Finnhub-compatible quote source. The injected http.Client
// carries the request timeout that bounds every external call.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a quote client for the given API base URL and key.
func NewClient(httpClient *http.Client, baseURL, apiKey string) *Client {
	return &Client{httpClient: httpClient, baseURL: baseURL, apiKey: apiKey}
}

// FetchPrice fetches the current quote for a symbol.
func (c *Client) FetchPrice(ctx context.Context, symbol string) (RawQuote, error) {
	endpoint := fmt.Sprintf("%s/quote?symbol=%s&token=%s",
		c.baseURL, url.QueryEscape(symbol), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return RawQuote{}, fmt.Errorf("building request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return RawQuote{}, fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return RawQuote{}, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var quote RawQuote
	if err := json.NewDecoder(resp.Body).Decode(&quote); err != nil {
		return RawQuote{}, fmt.Errorf("decoding response: %w", err)
	}

	return quote, nil
}
