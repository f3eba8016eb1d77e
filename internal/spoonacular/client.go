// Package spoonacular talks to the Spoonacular recipe API: it builds request
// URLs, performs the calls, routes searches to the right endpoint and
// normalizes the loosely shaped responses into the types used by the service
// layer.
package spoonacular

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public Spoonacular endpoint
const DefaultBaseURL = "https://api.spoonacular.com"

const maxLoggedBody = 512

// Client performs requests against the Spoonacular API. It does not cache.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *log.Logger
}

// Option customizes a Client
type Option func(*Client)

// WithBaseURL points the client at another host, e.g. a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithRequestsPerSecond paces outbound calls. Zero or less disables pacing.
func WithRequestsPerSecond(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLogger sets the logger used for failed calls
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a client. An empty apiKey is accepted here; every call
// made through the client then fails with ErrMissingAPIKey.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     strings.TrimSpace(apiKey),
		httpClient: http.DefaultClient,
		logger:     log.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// URL builds the fully-qualified request URL for path. The result doubles as
// the cache key, so parameters are encoded in sorted order.
func (c *Client) URL(path string, params url.Values) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	q := url.Values{}
	for k, vs := range params {
		q[k] = append([]string(nil), vs...)
	}
	q.Set("apiKey", c.apiKey)

	return c.baseURL + "/" + strings.TrimLeft(path, "/") + "?" + q.Encode(), nil
}

// Fetch performs a GET and returns the JSON body.
func (c *Client) Fetch(ctx context.Context, rawURL string) (json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, &NetworkError{URL: rawURL, Err: err}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("failed to create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// url.Error repeats the URL, which carries the API key.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, &NetworkError{URL: rawURL, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &NetworkError{URL: rawURL, Err: fmt.Errorf("failed to read response: %w", err)}
	}

	if resp.StatusCode == http.StatusPaymentRequired {
		c.logger.Printf("[Spoonacular] API limit reached. Please check your plan.")
		return nil, ErrRateLimited
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger.Printf("[Spoonacular] API error: %s %s", resp.Status, truncate(string(body), maxLoggedBody))
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       string(body),
		}
	}

	if !json.Valid(body) {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
			Body:       truncate(string(body), maxLoggedBody),
			Err:        errors.New("response is not valid JSON"),
		}
	}

	return json.RawMessage(body), nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
