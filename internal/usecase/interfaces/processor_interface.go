package interfaces

import "merchant_gateway/internal/domain/entities"

// RequestBuilder turns a ChargeRequest into the processor's native HTTP call.
type RequestBuilder interface {
	Build(req entities.ChargeRequest) (HTTPRequest, error)
}

// ResponseParser decodes a body into the processor's typed response and a
// diagnostic RawResponse. It must be a pure function of the body.
type ResponseParser[T any] interface {
	Parse(body []byte) (T, entities.RawResponse, error)
}

// ResultNormalizer maps a typed response to a GatewayResult.
type ResultNormalizer[T any] interface {
	Normalize(op entities.Operation, statusCode int, resp T) entities.GatewayResult
}

// Processor is the capability set a generic gateway is driven by.
type Processor[T any] interface {
	RequestBuilder
	ResponseParser[T]
	ResultNormalizer[T]

	Name() string
	// Format names the wire format of the processor's replies.
	Format() string
	Config() entities.ProcessorConfig
	Supports(op entities.Operation) bool
	// AcceptsStatus reports whether a reply with this HTTP status carries a
	// business response. Other statuses are transport failures.
	AcceptsStatus(statusCode int) bool
	// Scrub redacts secrets from a wire transcript before it is logged.
	Scrub(transcript string) string
}
