package zeamster

import (
	"encoding/json"
	"fmt"
	"net/http"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/domain/money"
	"merchant_gateway/internal/usecase/interfaces"
)

const descriptionLimit = 64

type route struct {
	action string
	method string
	// byReference routes to /transactions/{id} instead of /transactions.
	byReference bool
}

var actions = map[entities.Operation]route{
	entities.OperationSale:      {action: "sale", method: http.MethodPost},
	entities.OperationAuthorize: {action: "authonly", method: http.MethodPost},
	entities.OperationRefund:    {action: "refund", method: http.MethodPost},
	entities.OperationCapture:   {action: "authcomplete", method: http.MethodPost, byReference: true},
	entities.OperationVoid:      {action: "void", method: http.MethodPut, byReference: true},
}

type envelope struct {
	Transaction transaction `json:"transaction"`
}

type transaction struct {
	Action                   string   `json:"action"`
	PaymentMethod            string   `json:"payment_method,omitempty"`
	AccountNumber            string   `json:"account_number,omitempty"`
	ExpDate                  string   `json:"exp_date,omitempty"`
	CVV                      string   `json:"cvv,omitempty"`
	AccountHolderName        string   `json:"account_holder_name,omitempty"`
	TransactionAmount        *float64 `json:"transaction_amount,omitempty"`
	Tax                      *float64 `json:"tax,omitempty"`
	Description              string   `json:"description,omitempty"`
	OrderNum                 string   `json:"order_num,omitempty"`
	PONumber                 string   `json:"po_number,omitempty"`
	CustomerIP               string   `json:"customer_ip,omitempty"`
	NotificationEmailAddress string   `json:"notification_email_address,omitempty"`
	BillingStreet            string   `json:"billing_street,omitempty"`
	BillingCity              string   `json:"billing_city,omitempty"`
	BillingState             string   `json:"billing_state,omitempty"`
	BillingZip               string   `json:"billing_zip,omitempty"`
	BillingPhone             string   `json:"billing_phone,omitempty"`
	PreviousTransactionID    string   `json:"previous_transaction_id,omitempty"`
}

func (p *Processor) Build(req entities.ChargeRequest) (interfaces.HTTPRequest, error) {
	rt, ok := actions[req.Operation]
	if !ok {
		return interfaces.HTTPRequest{}, fmt.Errorf("%s %s: %w", Name, req.Operation, entities.ErrUnsupportedOperation)
	}

	opts := req.Options
	currency := opts.CurrencyOrDefault()
	tx := transaction{Action: rt.action}
	switch req.Operation {
	case entities.OperationSale, entities.OperationAuthorize:
		addInvoice(&tx, req.Amount, opts)
		addPayment(&tx, req.Card)
		addAddress(&tx, opts)
	case entities.OperationCapture:
		tx.TransactionAmount = dollars(req.Amount, currency)
	case entities.OperationRefund:
		tx.PaymentMethod = "cc"
		tx.PreviousTransactionID = req.Authorization
		tx.TransactionAmount = dollars(req.Amount, currency)
	}

	target := fmt.Sprintf("%s/transactions", p.rootURL)
	if rt.byReference {
		target = fmt.Sprintf("%s/transactions/%s", p.rootURL, req.Authorization)
	}

	b, err := json.Marshal(envelope{Transaction: tx})
	if err != nil {
		return interfaces.HTTPRequest{}, err
	}
	return interfaces.HTTPRequest{
		Method: rt.method,
		URL:    target,
		Body:   b,
		Headers: map[string]string{
			"Content-Type": "application/json",
			"Developer-ID": p.cfg.Credential(CredentialDeveloperID),
			"User-ID":      p.cfg.Credential(CredentialUserID),
			"User-API-Key": p.cfg.Credential(CredentialAPIKey),
		},
	}, nil
}

func dollars(amount int64, currency string) *float64 {
	v := money.Float(amount, currency)
	return &v
}

func addInvoice(tx *transaction, amount int64, opts entities.Options) {
	currency := opts.CurrencyOrDefault()
	tx.TransactionAmount = dollars(amount, currency)
	if opts.Tax != nil {
		tx.Tax = dollars(*opts.Tax, currency)
	}
	tx.Description = truncate(opts.OrderDescription, descriptionLimit)
	tx.OrderNum = opts.OrderID
	tx.PONumber = opts.PONumber
	tx.CustomerIP = opts.IPAddress
	if opts.EmailReceipt {
		tx.NotificationEmailAddress = opts.BillingEmail()
	}
}

func addPayment(tx *transaction, card *entities.CreditCard) {
	if card == nil {
		return
	}
	tx.PaymentMethod = "cc"
	tx.AccountNumber = card.Number
	tx.ExpDate = expiry.Render(card.Month, card.Year, expiry.MMYY)
	tx.CVV = card.VerificationValue
	tx.AccountHolderName = card.Name()
}

func addAddress(tx *transaction, opts entities.Options) {
	b := opts.BillingAddress
	if b == nil {
		return
	}
	tx.BillingStreet = b.Address1
	tx.BillingCity = b.City
	tx.BillingState = b.State
	tx.BillingZip = b.Zip
	tx.BillingPhone = b.Phone
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
