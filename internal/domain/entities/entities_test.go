package entities

import (
	"errors"
	"testing"
)

func TestProcessorConfig_Require(t *testing.T) {
	cfg := ProcessorConfig{Processor: "bluedog", Credentials: map[string]string{"login": "demo", "password": "  "}}

	err := cfg.Require("login", "password")
	if !errors.Is(err, ErrMissingCredential) {
		t.Fatalf("expected ErrMissingCredential, got %v", err)
	}
	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) || len(cfgErr.Missing) != 1 || cfgErr.Missing[0] != "password" {
		t.Fatalf("expected password to be reported missing, got %v", err)
	}
	if err := cfg.Require("login"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestProcessorConfig_URL(t *testing.T) {
	cfg := ProcessorConfig{Test: true}
	if got := cfg.URL("https://test", "https://live"); got != "https://test" {
		t.Fatalf("expected test url, got %s", got)
	}
	cfg.Test = false
	if got := cfg.URL("https://test", "https://live"); got != "https://live" {
		t.Fatalf("expected live url, got %s", got)
	}
	cfg.BaseURL = "http://127.0.0.1:9000/"
	if got := cfg.URL("https://test", "https://live"); got != "http://127.0.0.1:9000" {
		t.Fatalf("expected override url, got %s", got)
	}
}

func TestVerificationResults(t *testing.T) {
	if NewAVSResult("") != nil || NewCVVResult(" ") != nil {
		t.Fatalf("empty codes must produce no result")
	}
	avs := NewAVSResult("x")
	if avs.Code != "X" || avs.StreetMatch != "Y" || avs.PostalMatch != "Y" {
		t.Fatalf("unexpected avs result: %+v", avs)
	}
	if got := NewAVSResult("9"); got.Code != "9" || got.Message != "" {
		t.Fatalf("unknown avs code should be kept verbatim: %+v", got)
	}
	if cvv := NewCVVResult("M"); cvv.Message != "CVV matches" {
		t.Fatalf("unexpected cvv result: %+v", cvv)
	}
}

func TestTypedErrors(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&TransportError{Processor: "epn", Err: cause})
	if !errors.Is(err, ErrTransport) || !errors.Is(err, cause) {
		t.Fatalf("transport error must unwrap to sentinel and cause: %v", err)
	}
	err = &TransportError{Processor: "epn", StatusCode: 503}
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("status-only transport error must unwrap to sentinel")
	}
	err = &ParseError{Processor: "zeamster", Format: "json", Err: cause}
	if !errors.Is(err, ErrMalformedResponse) || errors.Is(err, ErrTransport) {
		t.Fatalf("parse error must be distinct from transport: %v", err)
	}
}

func TestOptions(t *testing.T) {
	o := Options{BillingAddress: &Address{Email: "billing@example.com"}}
	if o.BillingEmail() != "billing@example.com" {
		t.Fatalf("expected billing address email fallback")
	}
	o.Email = "buyer@example.com"
	if o.BillingEmail() != "buyer@example.com" {
		t.Fatalf("expected explicit email to win")
	}
	if o.CurrencyOrDefault() != "USD" {
		t.Fatalf("expected default currency")
	}
	o.Currency = "brl"
	if o.CurrencyOrDefault() != "BRL" {
		t.Fatalf("expected upper-cased currency")
	}
}

func TestMerchantProfile_ProcessorConfig(t *testing.T) {
	m := MerchantProfile{ID: "m-1", Processor: "zeamster", Test: true, Credentials: map[string]string{"user_id": "u", "user_api_key": "k"}}
	cfg := m.ProcessorConfig()
	cfg.Credentials["user_id"] = "changed"
	if m.Credentials["user_id"] != "u" {
		t.Fatalf("processor config must not alias profile credentials")
	}
	keys := m.CredentialKeys()
	if len(keys) != 2 || keys[0] != "user_api_key" || keys[1] != "user_id" {
		t.Fatalf("unexpected keys: %v", keys)
	}
}

func TestAddressNames(t *testing.T) {
	a := Address{Name: "Mary Ann Smith"}
	if a.FirstName() != "Mary Ann" || a.LastName() != "Smith" {
		t.Fatalf("unexpected split: %q %q", a.FirstName(), a.LastName())
	}
	single := Address{Name: "Cher"}
	if single.FirstName() != "Cher" || single.LastName() != "" {
		t.Fatalf("unexpected split: %q %q", single.FirstName(), single.LastName())
	}
}
