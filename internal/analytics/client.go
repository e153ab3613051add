// Package analytics is the HTTP/JSON client for the external analytics
// service that owns forecasting, technical indicators and news-sentiment
// scoring. This service only consumes that boundary; none of the math lives
// here.
package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/stockpulse/stockpulse/internal/model"
)

// UpstreamError is a failure reported by the analytics service itself,
// either as an error field in a 200 payload or as a non-2xx status.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return e.Message
}

type Client struct {
	baseURL  string
	client   *http.Client
	inflight *inflight
}

// NewClient creates an analytics client. The timeout bounds every upstream
// call; a hung analytics service must not hang a dashboard action forever.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		client:   &http.Client{Timeout: timeout},
		inflight: newInflight(),
	}
}

// Forecast requests a price history + forecast for one ticker. A new call
// for the same ticker supersedes any in-flight one.
func (c *Client) Forecast(ctx context.Context, req ForecastRequest) (*ForecastResponse, error) {
	ctx, done := c.inflight.begin(ctx, "predict:"+req.Ticker)
	defer done()

	var env forecastEnvelope
	err := c.post(ctx, "/predict", req, &env)
	if err != nil {
		return nil, err
	}
	if env.Error != "" {
		return nil, &UpstreamError{Message: env.Error}
	}
	return &env.ForecastResponse, nil
}

// Indicators requests the technical-indicator report for one ticker.
func (c *Client) Indicators(ctx context.Context, req IndicatorRequest) (*model.Indicators, error) {
	ctx, done := c.inflight.begin(ctx, "indicators:"+req.Ticker)
	defer done()

	var env indicatorsEnvelope
	err := c.post(ctx, "/Indicotor", req, &env)
	if err != nil {
		return nil, err
	}
	if env.Error != "" {
		return nil, &UpstreamError{Message: env.Error}
	}
	return &env.Indicators, nil
}

// NewsImpact requests the news-sentiment impact score and reason texts.
func (c *Client) NewsImpact(ctx context.Context, ticker string) (*NewsImpactResponse, error) {
	ctx, done := c.inflight.begin(ctx, "news:"+ticker)
	defer done()

	var env newsImpactEnvelope
	err := c.get(ctx, "/news-impact/"+url.PathEscape(ticker), &env)
	if err != nil {
		return nil, err
	}
	if env.Error != "" {
		return nil, &UpstreamError{Message: env.Error}
	}
	return &env.NewsImpactResponse, nil
}

// StockPrices fetches the current watchlist snapshot. The call is idempotent
// so transient failures are retried with backoff.
func (c *Client) StockPrices(ctx context.Context) ([]model.StockSnapshot, error) {
	var env stockPricesEnvelope
	err := retry(ctx, 3, 500*time.Millisecond, func() error {
		return c.get(ctx, "/stock-prices", &env)
	})
	if err != nil {
		return nil, err
	}
	if env.Error != "" {
		return nil, &UpstreamError{Message: env.Error}
	}
	return env.Stocks, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("analytics encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("analytics build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("analytics build request: %w", err)
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("analytics request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("analytics read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &UpstreamError{Message: upstreamMessage(raw, resp.StatusCode)}
	}

	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("analytics decode response: %w", err)
	}
	return nil
}

// upstreamMessage extracts the error message from a non-2xx body. FastAPI
// reports validation failures under "detail", everything else under "error".
func upstreamMessage(raw []byte, status int) string {
	var body struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Error != "" {
			return body.Error
		}
		if body.Detail != "" {
			return body.Detail
		}
	}
	return fmt.Sprintf("analytics service returned status %d", status)
}

// retry calls fn up to maxAttempts times with exponential backoff starting
// at baseDelay, respecting context cancellation between attempts.
func retry(ctx context.Context, maxAttempts int, baseDelay time.Duration, fn func() error) error {
	var err error
	delay := baseDelay

	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}

		if attempt < maxAttempts-1 {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(delay):
			}
			delay *= 2
		}
	}

	return err
}
