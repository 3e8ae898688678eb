// Package listmonk is the HTTP client for the listmonk REST API.
//
// One Client is created per process and shared by every tool invocation.
// Each method maps to exactly one verb+path on the remote API and returns the
// payload unwrapped from listmonk's {"data": ...} envelope.
package listmonk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/ignite/listmonk-mcp/internal/config"
	"github.com/ignite/listmonk-mcp/internal/domain"
	"github.com/ignite/listmonk-mcp/internal/metrics"
	"github.com/ignite/listmonk-mcp/internal/pkg/httpretry"
	"github.com/ignite/listmonk-mcp/internal/pkg/logger"
)

// RequestIDHeader carries the tool invocation id to the remote API.
const RequestIDHeader = "X-Request-ID"

// Client is the listmonk API client. It is safe for concurrent use.
type Client struct {
	baseURL    string
	username   string
	apiKey     string
	httpClient httpretry.HTTPDoer
	transport  *http.Client
	timeout    time.Duration
	metrics    *metrics.Collector
	closeOnce  sync.Once
}

// NewClient creates a client from a validated configuration. The timeout
// bounds the whole request; the retry count only applies to GET and HEAD.
func NewClient(cfg config.ListmonkConfig) *Client {
	transport := &http.Client{Timeout: cfg.Timeout()}
	return &Client{
		baseURL:    cfg.NormalizedBaseURL(),
		username:   cfg.Username,
		apiKey:     cfg.APIKey,
		httpClient: httpretry.NewRetryClient(transport, cfg.RetryCount),
		transport:  transport,
		timeout:    cfg.Timeout(),
	}
}

// SetMetrics attaches a collector that observes every remote request.
func (c *Client) SetMetrics(m *metrics.Collector) {
	c.metrics = m
}

// BaseURL returns the normalized base URL the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle pooled connections. It is safe to call more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		if c.transport != nil {
			c.transport.CloseIdleConnections()
		}
	})
}

// doRequest performs one authenticated request and returns the raw body of a
// 2xx response. Retries share the single timeout budget.
func (c *Client) doRequest(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBody)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(c.username, c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set(RequestIDHeader, id)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.ObserveRequest(method, path, 0, time.Since(start))
		logger.Warn("listmonk request failed", "method", method, "path", path, "request_id", RequestIDFrom(ctx), "error", err.Error())
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	c.metrics.ObserveRequest(method, path, resp.StatusCode, time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("listmonk request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"request_id", RequestIDFrom(ctx),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{Method: method, Path: path, StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	return respBody, nil
}

// get performs a GET and decodes the enveloped payload into T.
func get[T any](ctx context.Context, c *Client, path string, query url.Values) (T, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](respBody)
}

// send performs a mutating request and decodes the enveloped payload into T.
func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	respBody, err := c.doRequest(ctx, method, path, nil, body)
	if err != nil {
		var zero T
		return zero, err
	}
	return decode[T](respBody)
}

// decode unwraps listmonk's {"data": ...} envelope. The raw body is kept on
// failure so malformed payloads can be diagnosed.
func decode[T any](body []byte) (T, error) {
	var env domain.Envelope[T]
	if err := json.Unmarshal(body, &env); err != nil {
		var zero T
		return zero, &DecodeError{Body: string(body), Err: err}
	}
	return env.Data, nil
}

func pageParams(q domain.PageQuery) url.Values {
	params := url.Values{}
	page := q.Page
	if page <= 0 {
		page = 1
	}
	perPage := q.PerPage
	if perPage <= 0 {
		perPage = 20
	}
	params.Set("page", fmt.Sprint(page))
	params.Set("per_page", fmt.Sprint(perPage))
	if q.Query != "" {
		params.Set("query", q.Query)
	}
	return params
}
