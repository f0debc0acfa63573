package bluedog

import (
	"errors"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
)

// responseCodeUnknown marks a missing or non-numeric response_code.
const responseCodeUnknown = -1

// response is "1" approved, "2" declined or "3" error.
const responseApproved = "1"

var errMissingResponse = errors.New(`missing "response" field`)

// Response is a decoded transact.php reply.
type Response struct {
	Response        string
	ResponseText    string
	ResponseCode    int
	TransactionID   string
	AuthCode        string
	AVSResponse     string
	CVVResponse     string
	CustomerVaultID string
}

func (p *Processor) Parse(body []byte) (*Response, entities.RawResponse, error) {
	fields, err := wire.ParseKeyValue(body)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := fields["response"]; !ok {
		return nil, nil, errMissingResponse
	}

	raw := make(entities.RawResponse, len(fields))
	for k, v := range fields {
		raw[k] = v
	}
	return &Response{
		Response:        fields["response"],
		ResponseText:    fields["responsetext"],
		ResponseCode:    wire.IntField(fields, "response_code", responseCodeUnknown),
		TransactionID:   fields["transactionid"],
		AuthCode:        fields["authcode"],
		AVSResponse:     fields["avsresponse"],
		CVVResponse:     fields["cvvresponse"],
		CustomerVaultID: fields["customer_vault_id"],
	}, raw, nil
}
