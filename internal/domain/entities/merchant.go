package entities

import (
	"sort"
	"time"
)

// MerchantProfile is the persisted processor account of a merchant.
//
// Storage model (DynamoDB):
//   - PK: id
type MerchantProfile struct {
	ID          string            `json:"id"`
	Processor   string            `json:"processor"`
	Test        bool              `json:"test"`
	Credentials map[string]string `json:"credentials"`
	BaseURL     string            `json:"base_url,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

func (m MerchantProfile) ProcessorConfig() ProcessorConfig {
	creds := make(map[string]string, len(m.Credentials))
	for k, v := range m.Credentials {
		creds[k] = v
	}
	return ProcessorConfig{
		Processor:   m.Processor,
		Test:        m.Test,
		Credentials: creds,
		BaseURL:     m.BaseURL,
	}
}

// CredentialKeys lists credential names only, sorted.
func (m MerchantProfile) CredentialKeys() []string {
	keys := make([]string, 0, len(m.Credentials))
	for k := range m.Credentials {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
