// Package httpclient provides the shared outbound HTTP client with request
// logging and trace-header propagation.
package httpclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"blogsmith/internal/logger"
	"blogsmith/internal/trace"
)

// Config captures the common HTTP client settings.
type Config struct {
	Timeout time.Duration
}

// loggingRoundTripper logs every outbound call and stamps the
// X-Request-Id / X-Span-Id headers from the request context.
type loggingRoundTripper struct {
	inner http.RoundTripper
}

func (l *loggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	ctx := req.Context()
	requestID, spanID := trace.NextSpanID(ctx)
	if requestID == "" {
		requestID = req.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = trace.GenerateID()
		}
		if spanID == "" {
			spanID = "1"
		}
	}
	req.Header.Set("X-Request-Id", requestID)
	req.Header.Set("X-Span-Id", spanID)

	query := ""
	if req.URL != nil {
		query = req.URL.RawQuery
	}

	resp, err := l.inner.RoundTrip(req)
	duration := time.Since(start)
	if err != nil {
		logger.ErrorWithFields("httpclient request failed", logger.Fields{
			"method":     req.Method,
			"url":        req.URL.String(),
			"query":      query,
			"duration":   duration.String(),
			"request_id": requestID,
			"span_id":    spanID,
			"error":      err.Error(),
		})
		return nil, err
	}

	status := 0
	if resp != nil {
		status = resp.StatusCode
	}
	logger.DebugWithFields("httpclient request success", logger.Fields{
		"method":     req.Method,
		"url":        req.URL.String(),
		"query":      query,
		"status":     status,
		"duration":   duration.String(),
		"request_id": requestID,
		"span_id":    spanID,
	})
	return resp, nil
}

// BaseClient bundles a shared http.Client with a baseURL and helps with
// request construction.
type BaseClient struct {
	HTTPClient *http.Client
	BaseURL    string
}

// NewBaseClient builds a BaseClient with the default logging http.Client.
func NewBaseClient(baseURL string) *BaseClient {
	return &BaseClient{
		HTTPClient: NewDefault(),
		BaseURL:    baseURL,
	}
}

// NewRequest builds a request from the baseURL, a relative path, query values
// and body. relPath must carry the query via the query argument: path.Join
// would mangle an inline query string.
func (c *BaseClient) NewRequest(ctx context.Context, method, relPath string, query url.Values, body io.Reader) (*http.Request, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if strings.Contains(relPath, "?") {
		return nil, fmt.Errorf("httpclient: relPath must not contain query string (use query parameter instead): %s", relPath)
	}
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		return nil, err
	}
	if relPath != "" {
		base.Path = path.Join(base.Path, relPath)
	}
	if query != nil {
		base.RawQuery = query.Encode()
	}
	return http.NewRequestWithContext(ctx, method, base.String(), body)
}

// Do executes the request with the shared client.
func (c *BaseClient) Do(req *http.Request) (*http.Response, error) {
	return c.HTTPClient.Do(req)
}

// New builds an http.Client with the given settings. A zero Timeout means the
// 60 second default, sized for LLM completions rather than quick RPCs.
func New(cfg Config) *http.Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 60 * time.Second
	}

	return &http.Client{
		Timeout:   timeout,
		Transport: &loggingRoundTripper{inner: http.DefaultTransport},
	}
}

// NewDefault builds an http.Client with the shared default settings.
func NewDefault() *http.Client {
	return New(Config{})
}
