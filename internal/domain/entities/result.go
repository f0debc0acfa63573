package entities

// StandardErrorCode is the processor-neutral failure category.
type StandardErrorCode string

const (
	ErrorCardDeclined       StandardErrorCode = "card_declined"
	ErrorCallIssuer         StandardErrorCode = "call_issuer"
	ErrorPickupCard         StandardErrorCode = "pickup_card"
	ErrorExpiredCard        StandardErrorCode = "expired_card"
	ErrorInvalidCVC         StandardErrorCode = "invalid_cvc"
	ErrorInvalidExpiryDate  StandardErrorCode = "invalid_expiry_date"
	ErrorInvalidNumber      StandardErrorCode = "invalid_number"
	ErrorIncorrectNumber    StandardErrorCode = "incorrect_number"
	ErrorIncorrectCVC       StandardErrorCode = "incorrect_cvc"
	ErrorIncorrectAddress   StandardErrorCode = "incorrect_address"
	ErrorIncorrectPIN       StandardErrorCode = "incorrect_pin"
	ErrorConfigError        StandardErrorCode = "config_error"
	ErrorProcessingError    StandardErrorCode = "processing_error"
	ErrorUnsupportedFeature StandardErrorCode = "unsupported_feature"
)

// RawResponse is the parsed processor body, kept for diagnostics only.
type RawResponse map[string]any

// Clone copies the top level of the map.
func (r RawResponse) Clone() RawResponse {
	if r == nil {
		return nil
	}
	out := make(RawResponse, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// GatewayResult is the normalized outcome of one processor round trip.
// Empty Authorization and ErrorCode mean "absent".
type GatewayResult struct {
	Success       bool              `json:"success"`
	Message       string            `json:"message"`
	Raw           RawResponse       `json:"raw,omitempty"`
	Authorization string            `json:"authorization,omitempty"`
	AVS           *AVSResult        `json:"avs,omitempty"`
	CVV           *CVVResult        `json:"cvv,omitempty"`
	ErrorCode     StandardErrorCode `json:"error_code,omitempty"`
	Test          bool              `json:"test"`
	Processor     string            `json:"processor"`
	Operation     Operation         `json:"operation"`
}

func (r GatewayResult) AVSCode() string {
	if r.AVS == nil {
		return ""
	}
	return r.AVS.Code
}

func (r GatewayResult) CVVCode() string {
	if r.CVV == nil {
		return ""
	}
	return r.CVV.Code
}
