// Package epn talks to the eProcessing Network Transparent Database Engine:
// form-encoded requests answered with one comma-quoted record.
package epn

import (
	"net/http"
	"regexp"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
	"merchant_gateway/internal/usecase/interfaces"
)

const Name = "epn"

const (
	CredentialAccount     = "epn_account"
	CredentialRestrictKey = "restrict_key"
)

const (
	testURL = "https://www.eprocessingnetwork.com/cgi-bin/tdbe/transact.pl"
	liveURL = "https://www.eprocessingnetwork.com/cgi-bin/tdbe/transact.pl"
)

var scrubRules = []*regexp.Regexp{
	wire.FormRule("CardNo"),
	wire.FormRule("CVV2"),
	wire.FormRule("RestrictKey"),
}

type Processor struct {
	cfg entities.ProcessorConfig
	url string
}

var _ interfaces.Processor[*Response] = (*Processor)(nil)

func New(cfg entities.ProcessorConfig) (*Processor, error) {
	if err := cfg.Require(CredentialAccount, CredentialRestrictKey); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, url: cfg.URL(testURL, liveURL)}, nil
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Format() string { return wire.FormatDelimited }

func (p *Processor) Config() entities.ProcessorConfig { return p.cfg }

func (p *Processor) Supports(op entities.Operation) bool {
	_, ok := tranTypes[op]
	return ok
}

func (p *Processor) AcceptsStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func (p *Processor) Scrub(transcript string) string {
	return wire.Redact(transcript, scrubRules...)
}
