package bluedogv2

import (
	"encoding/json"
	"fmt"
	"net/http"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/usecase/interfaces"
)

type transactionRequest struct {
	Type            string          `json:"type,omitempty"`
	Amount          int64           `json:"amount"` // sent even when zero
	TaxAmount       *int64          `json:"tax_amount,omitempty"`
	TaxExempt       *bool           `json:"tax_exempt,omitempty"`
	ShippingAmount  *int64          `json:"shipping_amount,omitempty"`
	Currency        string          `json:"currency,omitempty"`
	Description     string          `json:"description,omitempty"`
	OrderID         string          `json:"order_id,omitempty"`
	PONumber        string          `json:"po_number,omitempty"`
	IPAddress       string          `json:"ip_address,omitempty"`
	EmailReceipt    *bool           `json:"email_receipt,omitempty"`
	EmailAddress    string          `json:"email_address,omitempty"`
	PaymentMethod   *paymentMethod  `json:"payment_method,omitempty"`
	BillingAddress  *addressPayload `json:"billing_address,omitempty"`
	ShippingAddress *addressPayload `json:"shipping_address,omitempty"`
}

type paymentMethod struct {
	Card cardPayload `json:"card"`
}

type cardPayload struct {
	EntryType      string `json:"entry_type"`
	Number         string `json:"number"`
	ExpirationDate string `json:"expiration_date"`
	CVC            string `json:"cvc,omitempty"`
}

type addressPayload struct {
	FirstName    string `json:"first_name,omitempty"`
	LastName     string `json:"last_name,omitempty"`
	Company      string `json:"company,omitempty"`
	AddressLine1 string `json:"address_line_1,omitempty"`
	AddressLine2 string `json:"address_line_2,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
	Country      string `json:"country,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Fax          string `json:"fax,omitempty"`
	Email        string `json:"email,omitempty"`
}

func (p *Processor) Build(req entities.ChargeRequest) (interfaces.HTTPRequest, error) {
	var (
		target string
		body   any
	)
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		target = fmt.Sprintf("%s/transaction", p.rootURL)
		tx := invoice(req)
		tx.Type = string(req.Operation)
		tx.PaymentMethod = payment(req.Card)
		tx.BillingAddress, tx.ShippingAddress = addresses(req.Card, req.Options)
		body = tx
	case entities.OperationCapture:
		target = fmt.Sprintf("%s/transaction/%s/capture", p.rootURL, req.Authorization)
		taxExempt := false
		body = transactionRequest{
			Amount:         req.Amount,
			TaxAmount:      req.Options.Tax,
			TaxExempt:      &taxExempt,
			ShippingAmount: req.Options.Shipping,
		}
	case entities.OperationRefund:
		target = fmt.Sprintf("%s/transaction/%s/refund", p.rootURL, req.Authorization)
		body = map[string]int64{"amount": req.Amount}
	case entities.OperationVoid:
		target = fmt.Sprintf("%s/transaction/%s/void", p.rootURL, req.Authorization)
		body = struct{}{}
	default:
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s: %w", Name, req.Operation, entities.ErrUnsupportedOperation)
	}

	b, err := json.Marshal(body)
	if err != nil {
		return interfaces.HTTPRequest{}, err
	}
	return interfaces.HTTPRequest{
		Method: http.MethodPost,
		URL:    target,
		Body:   b,
		Headers: map[string]string{
			"Content-Type":  "application/json",
			"Authorization": p.cfg.Credential(CredentialAPIKey),
		},
	}, nil
}

// Amounts are sent in cents.
func invoice(req entities.ChargeRequest) transactionRequest {
	opts := req.Options
	receipt := opts.EmailReceipt
	tx := transactionRequest{
		Amount:         req.Amount,
		TaxAmount:      opts.Tax,
		ShippingAmount: opts.Shipping,
		Currency:       opts.CurrencyOrDefault(),
		Description:    opts.OrderDescription,
		OrderID:        opts.OrderID,
		PONumber:       opts.PONumber,
		IPAddress:      opts.IPAddress,
		EmailReceipt:   &receipt,
	}
	if receipt {
		tx.EmailAddress = opts.BillingEmail()
	}
	return tx
}

func payment(card *entities.CreditCard) *paymentMethod {
	if card == nil {
		return nil
	}
	return &paymentMethod{Card: cardPayload{
		EntryType:      "keyed",
		Number:         card.Number,
		ExpirationDate: expiry.Render(card.Month, card.Year, expiry.MMSlashYY),
		CVC:            card.VerificationValue,
	}}
}

// addresses always returns a billing block; the shipping email falls back
// to the billing email.
func addresses(card *entities.CreditCard, opts entities.Options) (*addressPayload, *addressPayload) {
	billing := &addressPayload{Email: opts.BillingEmail()}
	if card != nil {
		billing.FirstName = card.FirstName
		billing.LastName = card.LastName
	}
	if b := opts.BillingAddress; b != nil {
		if billing.FirstName == "" {
			billing.FirstName = b.FirstName()
			billing.LastName = b.LastName()
		}
		billing.Company = b.Company
		billing.AddressLine1 = b.Address1
		billing.AddressLine2 = b.Address2
		billing.City = b.City
		billing.State = b.State
		billing.PostalCode = b.Zip
		billing.Country = b.Country
		billing.Phone = b.Phone
		billing.Fax = b.Fax
	}
	if billing.Company == "" {
		billing.Company = opts.Company
	}

	shipping := &addressPayload{Email: billing.Email}
	if s := opts.ShippingAddress; s != nil {
		shipping.FirstName = s.FirstName()
		shipping.LastName = s.LastName()
		shipping.Company = s.Company
		shipping.AddressLine1 = s.Address1
		shipping.AddressLine2 = s.Address2
		shipping.City = s.City
		shipping.State = s.State
		shipping.PostalCode = s.Zip
		shipping.Country = s.Country
		shipping.Phone = s.Phone
		shipping.Fax = s.Fax
		if s.Email != "" {
			shipping.Email = s.Email
		}
	}
	if *shipping == (addressPayload{}) {
		shipping = nil
	}
	return billing, shipping
}
