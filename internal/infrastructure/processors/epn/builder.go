package epn

import (
	"fmt"
	"net/http"
	"net/url"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/domain/money"
	"merchant_gateway/internal/usecase/interfaces"
)

var tranTypes = map[entities.Operation]string{
	entities.OperationSale:      "Sale",
	entities.OperationAuthorize: "AuthOnly",
	entities.OperationCapture:   "Auth2Sale",
	entities.OperationRefund:    "Return",
	entities.OperationVoid:      "Void",
	entities.OperationStore:     "Store",
}

func (p *Processor) Build(req entities.ChargeRequest) (interfaces.HTTPRequest, error) {
	tranType, ok := tranTypes[req.Operation]
	if !ok {
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s: %w", Name, req.Operation, entities.ErrUnsupportedOperation)
	}

	post := url.Values{}
	post.Set("ePNAccount", p.cfg.Credential(CredentialAccount))
	post.Set("RestrictKey", p.cfg.Credential(CredentialRestrictKey))
	post.Set("HTML", "No")
	post.Set("TranType", tranType)

	opts := req.Options
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		if err := addInvoice(post, req.Amount, opts); err != nil {
			return interfaces.HTTPRequest{}, err
		}
		addPayment(post, req.Card)
		addCustomerData(post, req.Card, opts)
	case entities.OperationCapture, entities.OperationRefund:
		if err := addInvoice(post, req.Amount, opts); err != nil {
			return interfaces.HTTPRequest{}, err
		}
		post.Set("TransID", req.Authorization)
	case entities.OperationVoid:
		post.Set("TransID", req.Authorization)
	case entities.OperationStore:
		addPayment(post, req.Card)
		addCustomerData(post, req.Card, opts)
	}

	return interfaces.HTTPRequest{
		Method:  http.MethodPost,
		URL:     p.url,
		Body:    []byte(post.Encode()),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}, nil
}

// addInvoice rejects zero totals: the engine treats them as a format error.
func addInvoice(post url.Values, amount int64, opts entities.Options) error {
	if amount <= 0 {
		return fmt.Errorf("%s: total must be positive, got %d: %w", Name, amount, entities.ErrInvalidAmount)
	}
	currency := opts.CurrencyOrDefault()
	post.Set("Total", money.Format(amount, currency))
	if opts.Tax != nil {
		post.Set("Tax", money.Format(*opts.Tax, currency))
	}
	if opts.Shipping != nil {
		post.Set("Shipping", money.Format(*opts.Shipping, currency))
	}
	setIf(post, "Inv", opts.OrderID)
	setIf(post, "Description", opts.OrderDescription)
	setIf(post, "PONum", opts.PONumber)
	return nil
}

func addPayment(post url.Values, card *entities.CreditCard) {
	if card == nil {
		return
	}
	post.Set("CardNo", card.Number)
	post.Set("ExpMonth", expiry.Month(card.Month))
	post.Set("ExpYear", expiry.Year(card.Year))
	if card.VerificationValue != "" {
		post.Set("CVV2Type", "1")
		post.Set("CVV2", card.VerificationValue)
	} else {
		post.Set("CVV2Type", "0")
	}
}

// addCustomerData sends the billing address only; this engine has no
// shipping-email fallback.
func addCustomerData(post url.Values, card *entities.CreditCard, opts entities.Options) {
	if card != nil {
		setIf(post, "FirstName", card.FirstName)
		setIf(post, "LastName", card.LastName)
	}
	setIf(post, "Company", opts.Company)
	if b := opts.BillingAddress; b != nil {
		setIf(post, "Address", b.Address1)
		setIf(post, "City", b.City)
		setIf(post, "State", b.State)
		setIf(post, "Zip", b.Zip)
		setIf(post, "Phone", b.Phone)
	}
	setIf(post, "EMail", opts.BillingEmail())
	if opts.EmailReceipt {
		post.Set("EMailCustomer", "Yes")
	}
	setIf(post, "CustomerIP", opts.IPAddress)
}

func setIf(post url.Values, key, value string) {
	if value != "" {
		post.Set(key, value)
	}
}
