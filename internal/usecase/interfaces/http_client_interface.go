package interfaces

import "context"

// HTTPRequest is one outbound call to a processor API.
type HTTPRequest struct {
	Method  string
	URL     string
	Body    []byte
	Headers map[string]string
}

// HTTPResponse is the raw status and body of a processor reply.
type HTTPResponse struct {
	StatusCode int
	Body       []byte
}

// HTTPClient performs the HTTPS round trip. TLS, pooling, retries and
// timeouts belong to the implementation, not to the gateways.
type HTTPClient interface {
	Do(ctx context.Context, req HTTPRequest) (*HTTPResponse, error)
}
