// Package bluedogv2 talks to the Blue Dog 2.0 JSON API.
package bluedogv2

import (
	"net/http"
	"regexp"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
	"merchant_gateway/internal/usecase/interfaces"
)

const Name = "bluedogv2"

const CredentialAPIKey = "api_key"

const (
	testURL = "https://sandbox.bluedogpayments.com/api"
	liveURL = "https://app.bluedogpayments.com/api"
)

var scrubRules = []*regexp.Regexp{
	wire.JSONRule("number"),
	wire.JSONRule("cvc"),
	wire.HeaderRule("Authorization"),
}

type Processor struct {
	cfg     entities.ProcessorConfig
	rootURL string
}

var _ interfaces.Processor[*Response] = (*Processor)(nil)

func New(cfg entities.ProcessorConfig) (*Processor, error) {
	if err := cfg.Require(CredentialAPIKey); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, rootURL: cfg.URL(testURL, liveURL)}, nil
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Format() string { return wire.FormatJSON }

func (p *Processor) Config() entities.ProcessorConfig { return p.cfg }

func (p *Processor) Supports(op entities.Operation) bool {
	switch op {
	case entities.OperationSale, entities.OperationAuthorize, entities.OperationCapture,
		entities.OperationRefund, entities.OperationVoid:
		return true
	}
	return false
}

// AcceptsStatus lets 4xx through: validation failures come back as a JSON
// envelope with status "failed".
func (p *Processor) AcceptsStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusInternalServerError
}

func (p *Processor) Scrub(transcript string) string {
	return wire.Redact(transcript, scrubRules...)
}
