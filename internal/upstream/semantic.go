// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package upstream issues the single outbound call to the Semantic Scholar
// paper search API. One inbound proxy invocation maps to exactly one call
// here: no retries, no caching, a fixed deadline.
package upstream

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/pdiddy/research-hub/pkg/types"
)

// semanticAPIBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticAPIBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// DefaultTimeout bounds one outbound call, measured from connection initiation.
const DefaultTimeout = 10 * time.Second

// DefaultUserAgent identifies the proxy to Semantic Scholar.
const DefaultUserAgent = "ResearchHub/1.0"

// rateLimitMessage is surfaced to the browser when Semantic Scholar answers
// 429. The proxy never waits or retries itself; the caller decides.
const rateLimitMessage = "rate limited by Semantic Scholar; wait 30 seconds and retry"

// Error is a failed outbound call with its translated HTTP status.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Result is a completed upstream response: the raw body bytes and the
// status code Semantic Scholar answered with. The body is relayed
// byte-for-byte; it is never parsed here.
type Result struct {
	Status int
	Body   []byte
}

// Client issues single-attempt GET requests to the paper search endpoint.
type Client struct {
	HTTP      *http.Client
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// NewClient builds a Client from configuration, filling in defaults.
func NewClient(cfg types.UpstreamConfig) *Client {
	return &Client{
		HTTP:      &http.Client{},
		APIKey:    cfg.APIKey,
		UserAgent: cfg.UserAgent,
		Timeout:   cfg.Timeout,
	}
}

// FetchPapers performs one GET against the paper search endpoint with the
// given raw query string appended verbatim. Failures are returned as *Error
// with the translated status: 504 on deadline, 429 on upstream rate
// limiting, 502 on any other transport-level failure. Every other upstream
// status, 4xx and 5xx included, is a successful Result carrying that status.
func (c *Client) FetchPapers(ctx context.Context, rawQuery string) (*Result, error) {
	reqURL := semanticAPIBase
	if rawQuery != "" {
		reqURL += "?" + rawQuery
	}

	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, &Error{Status: http.StatusBadGateway, Message: "creating request: " + err.Error()}
	}

	ua := c.UserAgent
	if ua == "" {
		ua = DefaultUserAgent
	}
	req.Header.Set("User-Agent", ua)
	if c.APIKey != "" {
		req.Header.Set("x-api-key", c.APIKey)
	}

	httpClient := c.HTTP
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, translateTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, translateTransportError(err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, &Error{Status: http.StatusTooManyRequests, Message: rateLimitMessage}
	}

	return &Result{Status: resp.StatusCode, Body: body}, nil
}

// translateTransportError maps a network-level failure to the status the
// proxy answers with: 504 when the deadline elapsed, 502 for everything
// else (DNS failure, connection refused, reset, TLS errors).
func translateTransportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Status: http.StatusGatewayTimeout, Message: "request timed out"}
	}
	return &Error{Status: http.StatusBadGateway, Message: err.Error()}
}
