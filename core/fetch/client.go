package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Fetcher downloads a remote payload in full.
type Fetcher interface {
	Fetch(ctx context.Context, rawURL string) ([]byte, error)
}

// Client is an HTTP Fetcher with bounded retries.
type Client struct {
	httpClient *http.Client
	logger     *zap.Logger
	userAgent  string
	secrets    []string

	maxRetries   int
	retryBackoff time.Duration
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// NewClient creates a fetch client with defaults suited to large static JSON files.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		logger:       zap.NewNop(),
		userAgent:    "feather/1.0",
		maxRetries:   2,
		retryBackoff: time.Second,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewClientFromConfig applies cfg on top of the defaults.
func NewClientFromConfig(cfg Config, opts ...ClientOption) *Client {
	base := []ClientOption{}
	if cfg.TimeoutSeconds > 0 {
		base = append(base, WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg.Retries >= 0 {
		base = append(base, WithRetries(cfg.Retries, time.Duration(cfg.RetryBackoffMillis)*time.Millisecond))
	}
	if cfg.UserAgent != "" {
		base = append(base, WithUserAgent(cfg.UserAgent))
	}
	return NewClient(append(base, opts...)...)
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithRetries sets the retry configuration.
func WithRetries(max int, backoff time.Duration) ClientOption {
	return func(c *Client) {
		c.maxRetries = max
		c.retryBackoff = backoff
	}
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// WithSecrets registers values that must never appear in errors or logs (e.g. tokens embedded in URLs).
func WithSecrets(secrets ...string) ClientOption {
	return func(c *Client) {
		for _, s := range secrets {
			if s != "" {
				c.secrets = append(c.secrets, s)
			}
		}
	}
}

// Fetch downloads url and returns the whole body. Network errors, 429 and 5xx responses are retried;
// other non-2xx statuses fail immediately.
func (c *Client) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	safeURL := c.redact(rawURL)

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			wait := c.retryBackoff * time.Duration(attempt)
			c.logger.Warn("Retrying remote fetch",
				zap.String("url", safeURL),
				zap.Int("attempt", attempt),
				zap.Duration("backoff", wait),
				zap.Error(lastErr),
			)
			select {
			case <-ctx.Done():
				return nil, fmt.Errorf("%w: %s: %w", ErrRemoteFetch, safeURL, ctx.Err())
			case <-time.After(wait):
			}
		}

		body, retry, err := c.do(ctx, rawURL)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if !retry {
			break
		}
	}

	return nil, fmt.Errorf("%w: %s: %w", ErrRemoteFetch, safeURL, lastErr)
}

func (c *Client) do(ctx context.Context, rawURL string) ([]byte, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, false, fmt.Errorf("failed to create request: %s", c.redact(err.Error()))
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			urlErr.URL = c.redact(urlErr.URL)
		}
		return nil, ctx.Err() == nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		retry := resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500
		return nil, retry, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("failed to read body: %w", err)
	}
	return body, false, nil
}

func (c *Client) redact(s string) string {
	for _, secret := range c.secrets {
		s = strings.ReplaceAll(s, secret, "***")
	}
	return s
}
