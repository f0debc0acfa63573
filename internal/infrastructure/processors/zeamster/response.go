package zeamster

import (
	"errors"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
)

var errUnrecognizedReply = errors.New(`reply has no "transaction", "errors" or "message"`)

// Response is either a transaction envelope, a validation error map or an
// authentication failure carrying only a message.
type Response struct {
	Transaction *Transaction `json:"transaction"`
	Errors      any          `json:"errors"`
	Message     string       `json:"message"`
}

type Transaction struct {
	ID           wire.FlexString `json:"id"`
	ReasonCodeID wire.FlexString `json:"reason_code_id"`
	StatusID     wire.FlexString `json:"status_id"`
	Verbiage     string          `json:"verbiage"`
	AuthCode     string          `json:"auth_code"`
	AVSEnhanced  string          `json:"avs_enhanced"`
	CVVResponse  string          `json:"cvv_response"`
}

func (p *Processor) Parse(body []byte) (*Response, entities.RawResponse, error) {
	resp, raw, err := wire.DecodeJSON[Response](body)
	if err != nil {
		return nil, nil, err
	}
	if resp.Transaction == nil && resp.Errors == nil && resp.Message == "" {
		return nil, nil, errUnrecognizedReply
	}
	return &resp, raw, nil
}

// reasonCode reports false when the reply has no transaction or code.
func (r *Response) reasonCode() (int, bool) {
	if r.Transaction == nil {
		return 0, false
	}
	return r.Transaction.ReasonCodeID.Int()
}
