// Package transport wraps a single HTTP call to the HustleXP API. It never
// retries and never logs; every failure comes back as an *Error.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"google.golang.org/api/googleapi"
)

// DefaultTimeout applies when a request does not set one.
const DefaultTimeout = 10 * time.Second

const requestIDHeader = "X-Request-Id"

// Options describe one request.
type Options struct {
	Method  string
	Body    any
	Timeout time.Duration
}

// Client issues JSON requests.
type Client struct {
	http *http.Client
}

// NewClient returns a client that sends through hc, or http.DefaultClient
// when hc is nil.
func NewClient(hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{http: hc}
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, url string, timeout time.Duration) (any, error) {
	return c.Request(ctx, url, Options{Method: http.MethodGet, Timeout: timeout})
}

// Post issues a POST request with body encoded as JSON.
func (c *Client) Post(ctx context.Context, url string, body any, timeout time.Duration) (any, error) {
	return c.Request(ctx, url, Options{Method: http.MethodPost, Body: body, Timeout: timeout})
}

// Request performs the call and decodes the JSON response. A non-nil error
// is always an *Error.
func (c *Client) Request(ctx context.Context, url string, opts Options) (any, error) {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}
	reqID := uuid.NewString()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var body io.Reader
	if opts.Body != nil {
		b, err := json.Marshal(opts.Body)
		if err != nil {
			return nil, &Error{Code: CodeNetworkError, Message: fmt.Sprintf("failed to encode request body: %v", err), RequestID: reqID}
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &Error{Code: CodeNetworkError, Message: err.Error(), RequestID: reqID}
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(requestIDHeader, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, classify(err, 0, reqID)
	}
	defer resp.Body.Close()

	if err := googleapi.CheckResponse(resp); err != nil {
		status := resp.StatusCode
		var gerr *googleapi.Error
		if errors.As(err, &gerr) {
			status = gerr.Code
		}
		return nil, &Error{
			Code:       codeForStatus(status),
			Message:    fmt.Sprintf("request failed with status %d", status),
			StatusCode: status,
			RequestID:  reqID,
		}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classify(err, resp.StatusCode, reqID)
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &Error{
			Code:       CodeInvalidJSON,
			Message:    fmt.Sprintf("failed to decode response body: %v", err),
			StatusCode: resp.StatusCode,
			RequestID:  reqID,
		}
	}
	return payload, nil
}

// classify maps a failure that produced no usable response.
func classify(err error, status int, reqID string) *Error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return &Error{Code: CodeTimeout, Message: "request timed out", StatusCode: status, RequestID: reqID}
	case errors.As(err, &netErr) && netErr.Timeout():
		return &Error{Code: CodeTimeout, Message: "request timed out", StatusCode: status, RequestID: reqID}
	default:
		return &Error{Code: CodeNetworkError, Message: err.Error(), StatusCode: status, RequestID: reqID}
	}
}
