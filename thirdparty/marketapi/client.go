package marketapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/muhammadheryan/micromarket/utils/metrics"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// APIPrefix is appended to the configured base URL.
const APIPrefix = "/api"

// Options configures a Client.
type Options struct {
	BaseURL string
	// Timeout of zero leaves requests unbounded; callers cancel through ctx.
	Timeout   time.Duration
	Transport http.RoundTripper
	Metrics   *metrics.BackendMetrics
}

// Client performs JSON calls against the marketplace REST API.
type Client struct {
	baseURL string
	http    *http.Client
	metrics *metrics.BackendMetrics
}

func New(opts Options) *Client {
	transport := opts.Transport
	if transport == nil {
		transport = http.DefaultTransport
	}
	return &Client{
		baseURL: strings.TrimRight(opts.BaseURL, "/") + APIPrefix,
		http: &http.Client{
			Timeout:   opts.Timeout,
			Transport: otelhttp.NewTransport(transport),
		},
		metrics: opts.Metrics,
	}
}

// Request describes one API call. Route is the path template used as the
// metrics label, Path the concrete path.
type Request struct {
	Method string
	Route  string
	Path   string
	Query  url.Values
	Token  string
	Body   any
}

// Error is a non-2xx answer from the backend.
type Error struct {
	Method     string
	Path       string
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// StatusCode returns the backend status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// Detail returns the backend's human readable error detail, if any.
func Detail(err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.Detail
	}
	return ""
}

// Do sends req and decodes a successful JSON answer into out (which may be
// nil).
func (c *Client) Do(ctx context.Context, req Request, out any) error {
	target := c.baseURL + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.Token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	}

	route := req.Route
	if route == "" {
		route = req.Path
	}
	label := req.Method + " " + route

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.metrics.Observe(label, 0, time.Since(start))
		return fmt.Errorf("%s %s: %w", req.Method, req.Path, err)
	}
	defer resp.Body.Close()
	c.metrics.Observe(label, resp.StatusCode, time.Since(start))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.Path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Error{
			Method:     req.Method,
			Path:       req.Path,
			StatusCode: resp.StatusCode,
			Detail:     decodeDetail(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%s %s: decode response: %w", req.Method, req.Path, err)
	}
	return nil
}

// decodeDetail extracts {"detail": "..."}; structured details such as
// validation error lists are not human readable and are dropped.
func decodeDetail(raw []byte) string {
	var envelope struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || len(envelope.Detail) == 0 {
		return ""
	}
	var detail string
	if err := json.Unmarshal(envelope.Detail, &detail); err != nil {
		return ""
	}
	return detail
}

// Doer is the calling surface repositories depend on.
type Doer interface {
	Do(ctx context.Context, req Request, out any) error
}
