package entities

import "strings"

// Operation is one step of a transaction's life at a processor.
type Operation string

const (
	OperationSale        Operation = "sale"
	OperationAuthorize   Operation = "authorize"
	OperationCapture     Operation = "capture"
	OperationRefund      Operation = "refund"
	OperationVoid        Operation = "void"
	OperationStore       Operation = "store"
	OperationUpdateStore Operation = "update_store"
	OperationUnstore     Operation = "unstore"
)

const DefaultCurrency = "USD"

// CreditCard is the payment method sent with sale, authorize and store calls.
//
// Token and Brand are only read by processors that take pre-tokenized cards.
type CreditCard struct {
	Number            string `json:"number"`
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	VerificationValue string `json:"verification_value,omitempty"`
	FirstName         string `json:"first_name,omitempty"`
	LastName          string `json:"last_name,omitempty"`
	Brand             string `json:"brand,omitempty"`
	Token             string `json:"token,omitempty"`
}

func (c CreditCard) Name() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Address struct {
	Name     string `json:"name,omitempty"`
	Company  string `json:"company,omitempty"`
	Address1 string `json:"address1,omitempty"`
	Address2 string `json:"address2,omitempty"`
	City     string `json:"city,omitempty"`
	State    string `json:"state,omitempty"`
	Zip      string `json:"zip,omitempty"`
	Country  string `json:"country,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Fax      string `json:"fax,omitempty"`
	Email    string `json:"email,omitempty"`
}

// FirstName splits Name on its last space; a single word is a first name.
func (a Address) FirstName() string {
	name := strings.TrimSpace(a.Name)
	if i := strings.LastIndex(name, " "); i >= 0 {
		return strings.TrimSpace(name[:i])
	}
	return name
}

func (a Address) LastName() string {
	name := strings.TrimSpace(a.Name)
	if i := strings.LastIndex(name, " "); i >= 0 {
		return name[i+1:]
	}
	return ""
}

// Options carries the optional order and customer data of a call.
// Zero values mean "absent" and are never sent to a processor.
type Options struct {
	BillingAddress   *Address `json:"billing_address,omitempty"`
	ShippingAddress  *Address `json:"shipping_address,omitempty"`
	OrderID          string   `json:"order_id,omitempty"`
	OrderDescription string   `json:"order_description,omitempty"`
	PONumber         string   `json:"po_number,omitempty"`
	Tax              *int64   `json:"tax,omitempty"`
	Shipping         *int64   `json:"shipping,omitempty"`
	IPAddress        string   `json:"ip_address,omitempty"`
	Email            string   `json:"email,omitempty"`
	EmailReceipt     bool     `json:"email_receipt,omitempty"`
	Company          string   `json:"company,omitempty"`
	Currency         string   `json:"currency,omitempty"`
	// VaultID charges a stored payment method instead of a card.
	VaultID string `json:"vault_id,omitempty"`
}

func (o Options) CurrencyOrDefault() string {
	if c := strings.TrimSpace(o.Currency); c != "" {
		return strings.ToUpper(c)
	}
	return DefaultCurrency
}

// BillingEmail prefers the explicit email over the billing address email.
func (o Options) BillingEmail() string {
	if o.Email != "" {
		return o.Email
	}
	if o.BillingAddress != nil {
		return o.BillingAddress.Email
	}
	return ""
}

// ChargeRequest is the processor-neutral input of a single facade call.
type ChargeRequest struct {
	Operation     Operation
	Amount        int64
	Card          *CreditCard
	Authorization string
	VaultID       string
	Options       Options
}
