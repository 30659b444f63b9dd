// Package apiclient talks to the remote agent-platform management API.
// Responses come back as raw JSON maps; failures of any kind collapse into
// an error-shaped map so page-level callers never branch on Go errors.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/agenticmail/dashboard/internal/normalize"
)

const defaultTimeout = 10 * time.Second

// Client is a thin JSON client for the management API.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
	metrics *Metrics
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout overrides the default request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.http.Timeout = timeout
		}
	}
}

// WithLogger attaches a logger for request failures.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger.Named("apiclient")
		}
	}
}

// WithMetrics attaches request instrumentation.
func WithMetrics(metrics *Metrics) Option {
	return func(c *Client) {
		c.metrics = metrics
	}
}

// New creates a Client for the API at baseURL.
func New(baseURL string, opts ...Option) *Client {
	client := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// Call performs one API request and decodes the JSON response. Transport
// errors, non-JSON bodies, and HTTP error statuses all return a map with a
// single "error" key; callers feed the result straight into the
// normalization layer.
func (c *Client) Call(ctx context.Context, method, path, token string, body normalize.Map) normalize.Map {
	start := time.Now()
	result := c.call(ctx, method, path, token, body)
	outcome := "ok"
	if _, failed := result["error"]; failed {
		outcome = "error"
	}
	if c.metrics != nil {
		c.metrics.observe(method, outcome, time.Since(start))
	}
	return result
}

func (c *Client) call(ctx context.Context, method, path, token string, body normalize.Map) normalize.Map {
	requestID := uuid.NewString()

	var payload io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return c.fail(method, path, requestID, fmt.Errorf("encode request: %w", err))
		}
		payload = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return c.fail(method, path, requestID, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-Id", requestID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(method, path, requestID, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(method, path, requestID, fmt.Errorf("read response: %w", err))
	}

	var decoded normalize.Map
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return c.fail(method, path, requestID, fmt.Errorf("decode response: %w", err))
		}
	}
	if decoded == nil {
		decoded = normalize.Map{}
	}

	if resp.StatusCode >= 400 {
		if msg := normalize.Str(decoded, "error"); msg != "" {
			return normalize.Map{"error": msg}
		}
		return c.fail(method, path, requestID, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}
	return decoded
}

func (c *Client) fail(method, path, requestID string, err error) normalize.Map {
	c.logger.Warn("api request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("request_id", requestID),
		zap.Error(err))
	return normalize.Map{"error": err.Error()}
}
