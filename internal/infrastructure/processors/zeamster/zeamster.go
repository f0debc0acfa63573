// Package zeamster talks to the Zeamster v2 transactions API, whose
// success depends on both the HTTP status and the reason code.
package zeamster

import (
	"net/http"
	"regexp"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
	"merchant_gateway/internal/usecase/interfaces"
)

const Name = "zeamster"

const (
	CredentialUserID      = "user_id"
	CredentialAPIKey      = "api_key"
	CredentialDeveloperID = "developer_id"
)

const (
	testURL = "https://api.sandbox.zeamster.com/v2"
	liveURL = "https://api.zeamster.com/v2"
)

var scrubRules = []*regexp.Regexp{
	wire.JSONRule("account_number"),
	wire.JSONRule("cvv"),
	wire.HeaderRule("User-API-Key"),
}

type Processor struct {
	cfg     entities.ProcessorConfig
	rootURL string
}

var _ interfaces.Processor[*Response] = (*Processor)(nil)

func New(cfg entities.ProcessorConfig) (*Processor, error) {
	if err := cfg.Require(CredentialUserID, CredentialAPIKey, CredentialDeveloperID); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, rootURL: cfg.URL(testURL, liveURL)}, nil
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Format() string { return wire.FormatJSON }

func (p *Processor) Config() entities.ProcessorConfig { return p.cfg }

func (p *Processor) Supports(op entities.Operation) bool {
	_, ok := actions[op]
	return ok
}

// AcceptsStatus lets 4xx through; the normalizer folds the status into
// the success predicate.
func (p *Processor) AcceptsStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusInternalServerError
}

func (p *Processor) Scrub(transcript string) string {
	return wire.Redact(transcript, scrubRules...)
}
