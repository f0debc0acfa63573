package epn

import (
	"strings"

	"merchant_gateway/internal/domain/entities"
	"merchant_gateway/internal/infrastructure/wire"
)

// declinePrefixes classifies "N" outcomes by the start of the message.
var declinePrefixes = []struct {
	prefix string
	code   entities.StandardErrorCode
}{
	{"DECLINED", entities.ErrorCardDeclined},
	{"INSUFFICIENT FUNDS", entities.ErrorCardDeclined},
	{"CALL", entities.ErrorCallIssuer},
	{"REFERRAL", entities.ErrorCallIssuer},
	{"PICK UP", entities.ErrorPickupCard},
	{"EXPIRED CARD", entities.ErrorExpiredCard},
	{"INVALID EXP", entities.ErrorInvalidExpiryDate},
	{"INVALID CARD", entities.ErrorInvalidNumber},
	{"CVV2 MISMATCH", entities.ErrorIncorrectCVC},
	{"INCORRECT PIN", entities.ErrorIncorrectPIN},
}

func errorCodeFor(r *Response) entities.StandardErrorCode {
	switch r.Status {
	case statusUnable:
		return entities.ErrorProcessingError
	case statusDeclined:
		msg := strings.ToUpper(strings.TrimSpace(r.Message))
		for _, d := range declinePrefixes {
			if strings.HasPrefix(msg, d.prefix) {
				return d.code
			}
		}
	}
	return ""
}

func (p *Processor) Normalize(_ entities.Operation, _ int, r *Response) entities.GatewayResult {
	success := r.Status == statusApproved
	result := entities.GatewayResult{
		Success:       success,
		Message:       strings.TrimSpace(r.Message),
		Authorization: r.TransactionID,
		AVS:           entities.NewAVSResult(wire.TrailingCode(r.AVSDescription)),
		CVV:           entities.NewCVVResult(wire.TrailingCode(r.CVVDescription)),
	}
	if !success {
		result.ErrorCode = errorCodeFor(r)
	}
	return result
}
