package entities

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrTransport            = errors.New("processor transport failure")
	ErrMalformedResponse    = errors.New("malformed processor response")
	ErrMissingCredential    = errors.New("missing processor credential")
	ErrUnknownProcessor     = errors.New("unknown processor")
	ErrUnsupportedOperation = errors.New("operation not supported by processor")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrMissingCard          = errors.New("missing payment method")
	ErrMissingAuthorization = errors.New("missing authorization reference")
	ErrMissingVaultID       = errors.New("missing vault id")
	ErrMerchantNotFound     = errors.New("merchant not found")
	ErrMerchantExists       = errors.New("merchant already exists")
)

// TransportError is a network failure or an HTTP status the processor
// contract does not expect. It is never turned into a GatewayResult.
type TransportError struct {
	Processor  string
	StatusCode int
	Err        error
}

func (e *TransportError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Processor, ErrTransport, e.Err)
	}
	return fmt.Sprintf("%s: %s: unexpected http status %d", e.Processor, ErrTransport, e.StatusCode)
}

func (e *TransportError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrTransport}
	}
	return []error{ErrTransport, e.Err}
}

// ParseError means the body could not be decoded in the processor's format.
type ParseError struct {
	Processor string
	Format    string
	Err       error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s (%s): %v", e.Processor, ErrMalformedResponse, e.Format, e.Err)
}

func (e *ParseError) Unwrap() []error {
	return []error{ErrMalformedResponse, e.Err}
}

// ConfigError lists the credentials a processor requires but did not get.
type ConfigError struct {
	Processor string
	Missing   []string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Processor, ErrMissingCredential, strings.Join(e.Missing, ", "))
}

func (e *ConfigError) Unwrap() error {
	return ErrMissingCredential
}
