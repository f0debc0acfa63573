package bluedog

import (
	"fmt"
	"net/http"
	"net/url"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/domain/money"
	"merchant_gateway/internal/usecase/interfaces"
)

func (p *Processor) Build(req entities.ChargeRequest) (interfaces.HTTPRequest, error) {
	post := url.Values{}
	post.Set("username", p.cfg.Credential(CredentialLogin))
	post.Set("password", p.cfg.Credential(CredentialPassword))

	opts := req.Options
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		if req.Operation == entities.OperationSale {
			post.Set("type", "sale")
		} else {
			post.Set("type", "authonly")
		}
		addInvoice(post, req.Amount, opts)
		if req.VaultID != "" {
			post.Set("customer_vault_id", req.VaultID)
		} else {
			addPayment(post, req.Card)
		}
		addCustomerData(post, req.Card, opts)
		addAddress(post, opts)
	case entities.OperationCapture, entities.OperationRefund:
		post.Set("type", string(req.Operation))
		post.Set("amount", money.Format(req.Amount, opts.CurrencyOrDefault()))
		post.Set("transactionid", req.Authorization)
	case entities.OperationVoid:
		post.Set("type", "void")
		post.Set("transactionid", req.Authorization)
	case entities.OperationStore:
		post.Set("customer_vault", "add_customer")
		addPayment(post, req.Card)
		addCustomerData(post, req.Card, opts)
		addAddress(post, opts)
	case entities.OperationUpdateStore:
		post.Set("customer_vault", "update_customer")
		post.Set("customer_vault_id", req.VaultID)
		addPayment(post, req.Card)
		addCustomerData(post, req.Card, opts)
		addAddress(post, opts)
	case entities.OperationUnstore:
		post.Set("customer_vault", "delete_customer")
		post.Set("customer_vault_id", req.VaultID)
	default:
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s: %w", Name, req.Operation, entities.ErrUnsupportedOperation)
	}

	return interfaces.HTTPRequest{
		Method:  http.MethodPost,
		URL:     p.url,
		Body:    []byte(post.Encode()),
		Headers: map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	}, nil
}

func addInvoice(post url.Values, amount int64, opts entities.Options) {
	currency := opts.CurrencyOrDefault()
	post.Set("amount", money.Format(amount, currency))
	post.Set("currency", currency)
	if opts.Tax != nil {
		post.Set("tax", money.Format(*opts.Tax, currency))
	}
	if opts.Shipping != nil {
		post.Set("shipping", money.Format(*opts.Shipping, currency))
	}
	setIf(post, "orderid", opts.OrderID)
	setIf(post, "orderdescription", opts.OrderDescription)
	setIf(post, "ponumber", opts.PONumber)
	setIf(post, "ipaddress", opts.IPAddress)
	if opts.EmailReceipt {
		post.Set("customer_receipt", "true")
	}
}

func addPayment(post url.Values, card *entities.CreditCard) {
	if card == nil {
		return
	}
	post.Set("ccnumber", card.Number)
	post.Set("ccexp", expiry.Render(card.Month, card.Year, expiry.MMYY))
	setIf(post, "cvv", card.VerificationValue)
}

func addCustomerData(post url.Values, card *entities.CreditCard, opts entities.Options) {
	if card != nil {
		setIf(post, "first_name", card.FirstName)
		setIf(post, "last_name", card.LastName)
	}
	company := opts.Company
	if company == "" && opts.BillingAddress != nil {
		company = opts.BillingAddress.Company
	}
	setIf(post, "company", company)
}

// addAddress sends billing and shipping independently. The shipping email
// falls back to the billing email even when no shipping address is given.
func addAddress(post url.Values, opts entities.Options) {
	billingEmail := opts.BillingEmail()
	if b := opts.BillingAddress; b != nil {
		setIf(post, "address1", b.Address1)
		setIf(post, "address2", b.Address2)
		setIf(post, "city", b.City)
		setIf(post, "state", b.State)
		setIf(post, "zip", b.Zip)
		setIf(post, "country", b.Country)
		setIf(post, "phone", b.Phone)
		setIf(post, "fax", b.Fax)
	}
	setIf(post, "email", billingEmail)

	shippingEmail := billingEmail
	if s := opts.ShippingAddress; s != nil {
		setIf(post, "shipping_firstname", s.FirstName())
		setIf(post, "shipping_lastname", s.LastName())
		setIf(post, "shipping_company", s.Company)
		setIf(post, "shipping_address1", s.Address1)
		setIf(post, "shipping_address2", s.Address2)
		setIf(post, "shipping_city", s.City)
		setIf(post, "shipping_state", s.State)
		setIf(post, "shipping_zip", s.Zip)
		setIf(post, "shipping_country", s.Country)
		if s.Email != "" {
			shippingEmail = s.Email
		}
	}
	setIf(post, "shipping_email", shippingEmail)
}

func setIf(post url.Values, key, value string) {
	if value != "" {
		post.Set(key, value)
	}
}
