// Package httpclient is the net/http implementation of interfaces.HTTPClient.
package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"merchant_gateway/internal/usecase/interfaces"
)

const (
	DefaultTimeout = 60 * time.Second
	// maxBodyBytes caps how much of a processor reply is read.
	maxBodyBytes = 1 << 20
)

var ErrBodyTooLarge = errors.New("response body exceeds limit")

type Client struct {
	http *http.Client
}

var _ interfaces.HTTPClient = (*Client)(nil)

func New(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{http: &http.Client{Timeout: timeout}}
}

// Do sends one request. Any HTTP status is returned as a response; only
// failures to complete the exchange are errors.
func (c *Client) Do(ctx context.Context, req interfaces.HTTPRequest) (*interfaces.HTTPResponse, error) {
	var body io.Reader
	if req.Body != nil {
		body = bytes.NewReader(req.Body)
	}
	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := c.http.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if len(b) > maxBodyBytes {
		return nil, fmt.Errorf("read response: %w (%d bytes)", ErrBodyTooLarge, maxBodyBytes)
	}
	return &interfaces.HTTPResponse{StatusCode: resp.StatusCode, Body: b}, nil
}
