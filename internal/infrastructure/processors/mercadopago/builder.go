package mercadopago

import (
	"encoding/json"
	"fmt"
	"net/http"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/money"
	"merchant_gateway/internal/usecase/interfaces"

	"github.com/google/uuid"
)

type paymentRequest struct {
	TransactionAmount float64         `json:"transaction_amount"`
	Token             string          `json:"token"`
	PaymentMethodID   string          `json:"payment_method_id,omitempty"`
	Installments      int             `json:"installments"`
	Capture           bool            `json:"capture"`
	Description       string          `json:"description,omitempty"`
	ExternalReference string          `json:"external_reference,omitempty"`
	Payer             payer           `json:"payer"`
	AdditionalInfo    *additionalInfo `json:"additional_info,omitempty"`
}

type payer struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type additionalInfo struct {
	IPAddress string `json:"ip_address,omitempty"`
}

type captureRequest struct {
	Capture           bool    `json:"capture"`
	TransactionAmount float64 `json:"transaction_amount"`
}

type cancelRequest struct {
	Status string `json:"status"`
}

type refundRequest struct {
	Amount float64 `json:"amount"`
}

func newIdempotencyKey() string { return uuid.NewString() }

func (p *Processor) Build(req entities.ChargeRequest) (interfaces.HTTPRequest, error) {
	if !p.Supports(req.Operation) {
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s: %w", Name, req.Operation, entities.ErrUnsupportedOperation)
	}
	if req.Operation != entities.OperationVoid && req.Amount <= 0 {
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s amount %d: %w", Name, req.Operation, req.Amount, entities.ErrInvalidAmount)
	}

	currency := req.Options.CurrencyOrDefault()
	var (
		method = http.MethodPost
		target string
		body   any
	)
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		pr, err := newPaymentRequest(req, currency)
		if err != nil {
			return interfaces.HTTPRequest{}, err
		}
		target = p.rootURL + "/v1/payments"
		body = pr
	case entities.OperationCapture:
		method = http.MethodPut
		target = p.paymentURL(req.Authorization)
		body = captureRequest{Capture: true, TransactionAmount: money.Float(req.Amount, currency)}
	case entities.OperationVoid:
		method = http.MethodPut
		target = p.paymentURL(req.Authorization)
		body = cancelRequest{Status: StatusCancelled}
	case entities.OperationRefund:
		target = p.paymentURL(req.Authorization) + "/refunds"
		body = refundRequest{Amount: money.Float(req.Amount, currency)}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return interfaces.HTTPRequest{}, err
	}
	return interfaces.HTTPRequest{
		Method: method,
		URL:    target,
		Body:   b,
		Headers: map[string]string{
			"Content-Type":      "application/json",
			"Authorization":     "Bearer " + p.cfg.Credential(CredentialAccessToken),
			"X-Idempotency-Key": p.newKey(),
		},
	}, nil
}

func (p *Processor) paymentURL(id string) string {
	return fmt.Sprintf("%s/v1/payments/%s", p.rootURL, id)
}

func newPaymentRequest(req entities.ChargeRequest, currency string) (paymentRequest, error) {
	card := req.Card
	if card == nil || card.Token == "" {
		return paymentRequest{}, fmt.Errorf("%s %s: card token required: %w", Name, req.Operation, entities.ErrMissingCard)
	}
	opts := req.Options
	pr := paymentRequest{
		TransactionAmount: money.Float(req.Amount, currency),
		Token:             card.Token,
		PaymentMethodID:   card.Brand,
		Installments:      1,
		Capture:           req.Operation == entities.OperationSale,
		Description:       opts.OrderDescription,
		ExternalReference: opts.OrderID,
		Payer: payer{
			Email:     opts.BillingEmail(),
			FirstName: card.FirstName,
			LastName:  card.LastName,
		},
	}
	if opts.IPAddress != "" {
		pr.AdditionalInfo = &additionalInfo{IPAddress: opts.IPAddress}
	}
	return pr, nil
}
