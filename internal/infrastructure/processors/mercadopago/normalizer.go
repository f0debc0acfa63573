package mercadopago

import (
	"net/http"
	"strconv"

	"merchant_gateway/internal/domain/entities"
)

// expectedStatus is the payment status that marks each operation as done.
var expectedStatus = map[entities.Operation]string{
	entities.OperationSale:      StatusApproved,
	entities.OperationAuthorize: StatusAuthorized,
	entities.OperationCapture:   StatusApproved,
	entities.OperationRefund:    StatusApproved,
	entities.OperationVoid:      StatusCancelled,
}

var statusDetails = map[string]entities.StandardErrorCode{
	"cc_rejected_bad_filled_card_number":   entities.ErrorIncorrectNumber,
	"cc_rejected_bad_filled_date":          entities.ErrorInvalidExpiryDate,
	"cc_rejected_bad_filled_security_code": entities.ErrorIncorrectCVC,
	"cc_rejected_bad_filled_other":         entities.ErrorProcessingError,
	"cc_rejected_call_for_authorize":       entities.ErrorCallIssuer,
	"cc_rejected_card_disabled":            entities.ErrorCardDeclined,
	"cc_rejected_insufficient_amount":      entities.ErrorCardDeclined,
	"cc_rejected_max_attempts":             entities.ErrorCardDeclined,
	"cc_rejected_high_risk":                entities.ErrorCardDeclined,
	"cc_rejected_blacklist":                entities.ErrorPickupCard,
	"cc_rejected_duplicated_payment":       entities.ErrorProcessingError,
	"cc_rejected_invalid_installments":     entities.ErrorProcessingError,
	"cc_rejected_other_reason":             entities.ErrorCardDeclined,
}

// causeCodes maps error envelope causes; anything else in a 4xx reply is a
// processing error.
var causeCodes = map[string]entities.StandardErrorCode{
	"2002": entities.ErrorConfigError,
	"2034": entities.ErrorConfigError,
	"205":  entities.ErrorIncorrectNumber,
	"208":  entities.ErrorInvalidExpiryDate,
	"209":  entities.ErrorInvalidExpiryDate,
	"224":  entities.ErrorInvalidCVC,
	"E301": entities.ErrorInvalidNumber,
	"E302": entities.ErrorInvalidCVC,
	"3034": entities.ErrorInvalidNumber,
}

func (p *Processor) Normalize(op entities.Operation, statusCode int, r *Response) entities.GatewayResult {
	if r.Error != nil {
		return normalizeError(statusCode, r.Error)
	}

	pay := r.Payment
	result := entities.GatewayResult{Message: pay.StatusDetail}
	if result.Message == "" {
		result.Message = pay.Status
	}
	if pay.ID != 0 {
		result.Authorization = strconv.Itoa(pay.ID)
	}
	result.Success = statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices &&
		pay.Status == expectedStatus[op]
	if result.Success {
		return result
	}

	if code, ok := statusDetails[pay.StatusDetail]; ok {
		result.ErrorCode = code
	} else if pay.Status == StatusRejected {
		result.ErrorCode = entities.ErrorCardDeclined
	} else {
		result.ErrorCode = entities.ErrorProcessingError
	}
	return result
}

func normalizeError(statusCode int, e *APIError) entities.GatewayResult {
	result := entities.GatewayResult{Message: e.Message}
	if result.Message == "" {
		result.Message = e.Error
	}
	if statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		result.ErrorCode = entities.ErrorConfigError
		return result
	}
	for _, c := range e.Cause {
		if code, ok := causeCodes[c.Code.String()]; ok {
			result.ErrorCode = code
			return result
		}
	}
	result.ErrorCode = entities.ErrorProcessingError
	return result
}
