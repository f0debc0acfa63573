package bluedogv2

import (
	"strings"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/processors/bluedog"
)

// outcome prefers data.response over the envelope status.
func (r *Response) outcome() string {
	if r.Data != nil && r.Data.Response != "" {
		return strings.ToLower(r.Data.Response)
	}
	return strings.ToLower(r.Status)
}

func (p *Processor) Normalize(_ entities.Operation, _ int, r *Response) entities.GatewayResult {
	outcome := r.outcome()
	success := outcome == "success" || outcome == "approved"

	code := -1
	if r.Data != nil {
		if n, ok := r.Data.ResponseCode.Int(); ok {
			code = n
		}
	}

	result := entities.GatewayResult{Success: success, Message: message(r, code, outcome)}
	if r.Data != nil {
		result.Authorization = r.Data.ID.String()
	}
	if card := r.card(); card != nil {
		result.AVS = entities.NewAVSResult(card.AVSResponseCode)
		result.CVV = entities.NewCVVResult(card.CVVResponseCode)
	}
	if !success {
		result.ErrorCode = bluedog.ErrorCodeFor(code)
	}
	return result
}

// message prefers the processor text, then the code table, then the
// envelope message and finally the raw outcome.
func message(r *Response, code int, outcome string) string {
	if card := r.card(); card != nil && card.ProcessorResponseText != "" {
		return card.ProcessorResponseText
	}
	if msg, ok := bluedog.MessageFor(code); ok {
		return msg
	}
	if r.Msg != "" {
		return r.Msg
	}
	return outcome
}
