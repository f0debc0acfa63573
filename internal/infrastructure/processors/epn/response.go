package epn

import (
	"fmt"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
)

// Leading sentinel of the first field.
const (
	statusApproved = "Y"
	statusDeclined = "N"
	statusUnable   = "U"
)

// Response is the positional record: outcome, AVS text, CVV text, invoice
// number and transaction id.
type Response struct {
	Status         string
	Message        string
	AVSDescription string
	CVVDescription string
	Invoice        string
	TransactionID  string
}

func (p *Processor) Parse(body []byte) (*Response, entities.RawResponse, error) {
	fields, err := wire.ParseDelimited(body)
	if err != nil {
		return nil, nil, err
	}
	outcome := wire.Field(fields, 0)
	if outcome == "" {
		return nil, nil, fmt.Errorf("empty outcome field")
	}
	status := outcome[:1]
	switch status {
	case statusApproved, statusDeclined, statusUnable:
	default:
		return nil, nil, fmt.Errorf("unknown outcome sentinel %q", status)
	}

	r := &Response{
		Status:         status,
		Message:        outcome[1:],
		AVSDescription: wire.Field(fields, 1),
		CVVDescription: wire.Field(fields, 2),
		Invoice:        wire.Field(fields, 3),
		TransactionID:  wire.Field(fields, 4),
	}
	raw := entities.RawResponse{
		"response":       outcome,
		"avs_response":   r.AVSDescription,
		"cvv_response":   r.CVVDescription,
		"invoice_number": r.Invoice,
		"transaction_id": r.TransactionID,
	}
	return r, raw, nil
}
