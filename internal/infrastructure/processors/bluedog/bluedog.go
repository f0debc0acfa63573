// Package bluedog talks to the Blue Dog transact.php API: form-encoded
// requests, ampersand key=value responses and a customer vault.
package bluedog

import (
	"net/http"
	"regexp"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
	"merchant_gateway/internal/usecase/interfaces"
)

const Name = "bluedog"

const (
	CredentialLogin    = "login"
	CredentialPassword = "password"
)

const (
	testURL = "https://bluedog.transactiongateway.com/api/transact.php"
	liveURL = "https://bluedog.transactiongateway.com/api/transact.php"
)

var scrubRules = []*regexp.Regexp{
	wire.FormRule("ccnumber"),
	wire.FormRule("cvv"),
	wire.FormRule("password"),
}

type Processor struct {
	cfg entities.ProcessorConfig
	url string
}

var _ interfaces.Processor[*Response] = (*Processor)(nil)

func New(cfg entities.ProcessorConfig) (*Processor, error) {
	if err := cfg.Require(CredentialLogin, CredentialPassword); err != nil {
		return nil, err
	}
	return &Processor{cfg: cfg, url: cfg.URL(testURL, liveURL)}, nil
}

func (p *Processor) Name() string { return Name }

func (p *Processor) Format() string { return wire.FormatKeyValue }

func (p *Processor) Config() entities.ProcessorConfig { return p.cfg }

func (p *Processor) Supports(op entities.Operation) bool {
	switch op {
	case entities.OperationSale, entities.OperationAuthorize, entities.OperationCapture,
		entities.OperationRefund, entities.OperationVoid,
		entities.OperationStore, entities.OperationUpdateStore, entities.OperationUnstore:
		return true
	}
	return false
}

// AcceptsStatus: business outcomes always arrive with a 2xx status.
func (p *Processor) AcceptsStatus(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

func (p *Processor) Scrub(transcript string) string {
	return wire.Redact(transcript, scrubRules...)
}
