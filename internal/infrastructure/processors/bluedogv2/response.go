package bluedogv2

import (
	"errors"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
)

var errUnrecognizedReply = errors.New(`reply has neither "status" nor "data"`)

// Response is the API envelope. Data is absent on validation failures.
type Response struct {
	Status string           `json:"status"`
	Msg    string           `json:"msg"`
	Data   *TransactionData `json:"data"`
}

type TransactionData struct {
	ID           wire.FlexString `json:"id"`
	Type         string          `json:"type"`
	Amount       wire.FlexString `json:"amount"`
	Response     string          `json:"response"`
	ResponseCode wire.FlexString `json:"response_code"`
	ResponseBody *ResponseBody   `json:"response_body"`
}

type ResponseBody struct {
	Card *CardResponse `json:"card"`
}

type CardResponse struct {
	AuthCode              string `json:"auth_code"`
	AVSResponseCode       string `json:"avs_response_code"`
	CVVResponseCode       string `json:"cvv_response_code"`
	ProcessorResponseText string `json:"processor_response_text"`
}

func (p *Processor) Parse(body []byte) (*Response, entities.RawResponse, error) {
	resp, raw, err := wire.DecodeJSON[Response](body)
	if err != nil {
		return nil, nil, err
	}
	if resp.Status == "" && resp.Data == nil {
		return nil, nil, errUnrecognizedReply
	}
	return &resp, raw, nil
}

// card is nil when the reply carries no card section, e.g. captures.
func (r *Response) card() *CardResponse {
	if r.Data == nil || r.Data.ResponseBody == nil {
		return nil
	}
	return r.Data.ResponseBody.Card
}
