package bluedog

import "merchant_gateway/internal/domain/entities"

var responseMessages = map[int]string{
	100: "Transaction was approved.",
	200: "Transaction was declined by processor.",
	201: "Do not honor.",
	202: "Insufficient funds.",
	203: "Over limit.",
	204: "Transaction not allowed.",
	220: "Incorrect payment information.",
	221: "No such card issuer.",
	222: "No card number on file with issuer.",
	223: "Expired card.",
	224: "Invalid expiration date.",
	225: "Invalid card security code.",
	240: "Call issuer for further information.",
	250: "Pick up card.",
	251: "Lost card.",
	252: "Stolen card.",
	253: "Fraudulent card.",
	260: "Declined with further instructions available. (See response text)",
	261: "Declined-Stop all recurring payments.",
	262: "Declined-Stop this recurring program.",
	263: "Declined-Update cardholder data available.",
	264: "Declined-Retry in a few days.",
	300: "Transaction was rejected by gateway.",
	400: "Transaction error returned by processor.",
	410: "Invalid merchant configuration.",
	411: "Merchant account is inactive.",
	420: "Communication error.",
	421: "Communication error with issuer.",
	430: "Duplicate transaction at processor.",
	440: "Processor format error.",
	441: "Invalid transaction information.",
	460: "Processor feature not available.",
	461: "Unsupported card type.",
}

// Codes 260, 300, 400, 430 and 441 stay unclassified.
var errorCodes = map[int]entities.StandardErrorCode{
	200: entities.ErrorCardDeclined,
	201: entities.ErrorCardDeclined,
	202: entities.ErrorCardDeclined,
	203: entities.ErrorCardDeclined,
	204: entities.ErrorCardDeclined,
	220: entities.ErrorInvalidNumber,
	221: entities.ErrorInvalidNumber,
	222: entities.ErrorIncorrectNumber,
	223: entities.ErrorExpiredCard,
	224: entities.ErrorInvalidExpiryDate,
	225: entities.ErrorInvalidCVC,
	240: entities.ErrorCallIssuer,
	250: entities.ErrorPickupCard,
	251: entities.ErrorPickupCard,
	252: entities.ErrorPickupCard,
	253: entities.ErrorPickupCard,
	261: entities.ErrorCardDeclined,
	262: entities.ErrorCardDeclined,
	263: entities.ErrorCardDeclined,
	264: entities.ErrorCardDeclined,
	410: entities.ErrorConfigError,
	411: entities.ErrorConfigError,
	420: entities.ErrorProcessingError,
	421: entities.ErrorProcessingError,
	440: entities.ErrorProcessingError,
	460: entities.ErrorUnsupportedFeature,
	461: entities.ErrorUnsupportedFeature,
}

// MessageFor returns the documented text of a response code.
func MessageFor(code int) (string, bool) {
	msg, ok := responseMessages[code]
	return msg, ok
}

// ErrorCodeFor classifies a response code; unknown codes yield "".
func ErrorCodeFor(code int) entities.StandardErrorCode {
	return errorCodes[code]
}

func (p *Processor) Normalize(op entities.Operation, _ int, r *Response) entities.GatewayResult {
	success := r.Response == responseApproved

	message, ok := MessageFor(r.ResponseCode)
	if !ok {
		message = r.ResponseText
	}

	authorization := r.TransactionID
	switch op {
	case entities.OperationStore, entities.OperationUpdateStore, entities.OperationUnstore:
		authorization = r.CustomerVaultID
	}

	result := entities.GatewayResult{
		Success:       success,
		Message:       message,
		Authorization: authorization,
		AVS:           entities.NewAVSResult(r.AVSResponse),
		CVV:           entities.NewCVVResult(r.CVVResponse),
	}
	if !success {
		result.ErrorCode = ErrorCodeFor(r.ResponseCode)
	}
	return result
}
