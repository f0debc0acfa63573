package entities

import "strings"

// ProcessorConfig selects a processor backend and carries its credentials.
// It is read-only once handed to a gateway.
type ProcessorConfig struct {
	Processor   string            `json:"processor"`
	Test        bool              `json:"test"`
	Credentials map[string]string `json:"credentials"`
	// BaseURL replaces the processor's test/live URL when set.
	BaseURL string `json:"base_url,omitempty"`
}

func (c ProcessorConfig) Credential(key string) string {
	return strings.TrimSpace(c.Credentials[key])
}

// Require returns a *ConfigError naming every blank credential in keys.
func (c ProcessorConfig) Require(keys ...string) error {
	var missing []string
	for _, k := range keys {
		if c.Credential(k) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return &ConfigError{Processor: c.Processor, Missing: missing}
	}
	return nil
}

// URL picks BaseURL, then the live or test URL.
func (c ProcessorConfig) URL(testURL, liveURL string) string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	if c.Test {
		return testURL
	}
	return liveURL
}
