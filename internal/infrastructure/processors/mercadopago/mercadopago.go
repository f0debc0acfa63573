// Package mercadopago talks to the Mercado Pago payments API with
// pre-tokenized cards. Replies are decoded into the SDK's payment types.
package mercadopago

import (
	"net/http"
	"regexp"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
	"merchant_gateway/internal/usecase/interfaces"
)

const Name = "mercadopago"

const CredentialAccessToken = "access_token"

// Sandbox and production share a host; test credentials select the sandbox.
const (
	testURL = "https://api.mercadopago.com"
	liveURL = "https://api.mercadopago.com"
)

var scrubRules = []*regexp.Regexp{
	wire.JSONRule("token"),
	wire.HeaderRule("Authorization"),
}

type Processor struct {
	cfg     entities.ProcessorConfig
	rootURL string
	// newKey mints the X-Idempotency-Key of each request.
	newKey func() string
}

var _ interfaces.Processor[*Response] = (*Processor)(nil)

func New(cfg entities.ProcessorConfig) (*Processor, error) {
	if err := cfg.Require(CredentialAccessToken); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, rootURL: cfg.URL(testURL, liveURL), newKey: newIdempotencyKey}, nil
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Format() string { return wire.FormatJSON }

func (p *Processor) Config() entities.ProcessorConfig { return p.cfg }

func (p *Processor) Supports(op entities.Operation) bool {
	_, ok := expectedStatus[op]
	return ok
}

// AcceptsStatus lets 4xx error envelopes reach the normalizer.
func (p *Processor) AcceptsStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusInternalServerError
}

func (p *Processor) Scrub(transcript string) string {
	return wire.Redact(transcript, scrubRules...)
}
