package mercadopago

import (
	"encoding/json"
	"fmt"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"

	"github.com/mercadopago/sdk-go/pkg/payment"
)

const (
	StatusApproved   = "approved"
	StatusAuthorized = "authorized"
	StatusCancelled  = "cancelled"
	StatusRejected   = "rejected"
)

// Response holds either a payment (or refund) resource or an API error
// envelope.
type Response struct {
	Payment *payment.Response
	Error   *APIError
}

type APIError struct {
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Status  wire.FlexString `json:"status"`
	Cause   []Cause         `json:"cause"`
}

type Cause struct {
	Code        wire.FlexString `json:"code"`
	Description string          `json:"description"`
}

func (p *Processor) Parse(body []byte) (*Response, entities.RawResponse, error) {
	envelope, raw, err := wire.DecodeJSON[APIError](body)
	if err != nil {
		return nil, nil, err
	}
	if envelope.Error != "" {
		return &Response{Error: &envelope}, raw, nil
	}
	var pay payment.Response
	if err := json.Unmarshal(body, &pay); err != nil {
		return nil, nil, fmt.Errorf("decode payment: %w", err)
	}
	return &Response{Payment: &pay}, raw, nil
}
