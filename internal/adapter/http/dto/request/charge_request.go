package request

import (
	"errors"
	"strings"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/domain/expiry"
	"merchant_gateway/internal/domain/money"
)

var (
	ErrMissingAmount   = errors.New("amount or amount_decimal is required")
	ErrAmbiguousAmount = errors.New("send either amount or amount_decimal, not both")
	ErrInvalidDecimal  = errors.New("invalid amount_decimal")
	ErrMissingCard     = errors.New("card is required")
)

// CardRequest is a raw card, or a processor token plus brand.
type CardRequest struct {
	Number            string `json:"number"`
	Month             int    `json:"month"`
	Year              int    `json:"year"`
	VerificationValue string `json:"verification_value"`
	FirstName         string `json:"first_name"`
	LastName          string `json:"last_name"`
	Brand             string `json:"brand"`
	Token             string `json:"token"`
}

// Validate checks the shape of raw cards. Tokenized cards and expired dates
// are left to the processor.
func (c CardRequest) Validate() error {
	if strings.TrimSpace(c.Token) != "" {
		return nil
	}
	if strings.TrimSpace(c.Number) == "" {
		return ErrMissingCard
	}
	return expiry.Validate(c.Month, c.Year)
}

func (c *CardRequest) ToEntity() *entities.CreditCard {
	if c == nil {
		return nil
	}
	return &entities.CreditCard{
		Number:            strings.ReplaceAll(strings.TrimSpace(c.Number), " ", ""),
		Month:             c.Month,
		Year:              c.Year,
		VerificationValue: strings.TrimSpace(c.VerificationValue),
		FirstName:         strings.TrimSpace(c.FirstName),
		LastName:          strings.TrimSpace(c.LastName),
		Brand:             strings.TrimSpace(c.Brand),
		Token:             strings.TrimSpace(c.Token),
	}
}

// AmountRequest accepts minor units ("amount": 1050) or a decimal string in
// the options currency ("amount_decimal": "10.50").
type AmountRequest struct {
	Amount        *int64 `json:"amount"`
	AmountDecimal string `json:"amount_decimal"`
}

func (a AmountRequest) ResolveAmount(currency string) (int64, error) {
	dec := strings.TrimSpace(a.AmountDecimal)
	switch {
	case a.Amount != nil && dec != "":
		return 0, ErrAmbiguousAmount
	case a.Amount != nil:
		return *a.Amount, nil
	case dec != "":
		v, err := money.Parse(dec, currency)
		if err != nil {
			return 0, ErrInvalidDecimal
		}
		return v, nil
	}
	return 0, ErrMissingAmount
}

// ChargeRequest is the body of purchase and authorize. Card may be omitted
// when options.vault_id names a stored payment method.
type ChargeRequest struct {
	AmountRequest
	Card    *CardRequest     `json:"card"`
	Options entities.Options `json:"options"`
}

// CardOnlyRequest is the body of verify, store and vault updates.
type CardOnlyRequest struct {
	Card    *CardRequest     `json:"card"`
	Options entities.Options `json:"options"`
}

// FollowUpRequest is the body of capture and refund; void ignores the amount.
type FollowUpRequest struct {
	AmountRequest
	Options entities.Options `json:"options"`
}

type CreateMerchantRequest struct {
	ID          string            `json:"id"`
	Processor   string            `json:"processor" binding:"required"`
	Test        bool              `json:"test"`
	Credentials map[string]string `json:"credentials" binding:"required"`
	BaseURL     string            `json:"base_url"`
}
