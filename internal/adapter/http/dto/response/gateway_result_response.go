package response

import (
	"time"

	"merchant_gateway/internal/domain/entities"
)

type GatewayResultResponse struct {
	Success       bool           `json:"success"`
	Message       string         `json:"message"`
	Authorization string         `json:"authorization,omitempty"`
	AVSCode       string         `json:"avs_code,omitempty"`
	AVSMessage    string         `json:"avs_message,omitempty"`
	CVVCode       string         `json:"cvv_code,omitempty"`
	CVVMessage    string         `json:"cvv_message,omitempty"`
	ErrorCode     string         `json:"error_code,omitempty"`
	Test          bool           `json:"test"`
	Processor     string         `json:"processor"`
	Operation     string         `json:"operation"`
	Raw           map[string]any `json:"raw,omitempty"`
}

func FromGatewayResult(r entities.GatewayResult) GatewayResultResponse {
	out := GatewayResultResponse{
		Success:       r.Success,
		Message:       r.Message,
		Authorization: r.Authorization,
		ErrorCode:     string(r.ErrorCode),
		Test:          r.Test,
		Processor:     r.Processor,
		Operation:     string(r.Operation),
		Raw:           r.Raw.Clone(),
	}
	if r.AVS != nil {
		out.AVSCode, out.AVSMessage = r.AVS.Code, r.AVS.Message
	}
	if r.CVV != nil {
		out.CVVCode, out.CVVMessage = r.CVV.Code, r.CVV.Message
	}
	return out
}

// MerchantResponse never echoes credential values.
type MerchantResponse struct {
	ID             string    `json:"id"`
	Processor      string    `json:"processor"`
	Test           bool      `json:"test"`
	CredentialKeys []string  `json:"credential_keys"`
	BaseURL        string    `json:"base_url,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromMerchant(m entities.MerchantProfile) MerchantResponse {
	return MerchantResponse{
		ID:             m.ID,
		Processor:      m.Processor,
		Test:           m.Test,
		CredentialKeys: m.CredentialKeys(),
		BaseURL:        m.BaseURL,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}
