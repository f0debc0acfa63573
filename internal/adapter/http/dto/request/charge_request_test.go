package request

import (
	"errors"
	"testing"

	"merchant_gateway/internal/domain/expiry"
)

func TestAmountRequest_ResolveAmount(t *testing.T) {
	cents := int64(1050)

	if got, err := (AmountRequest{Amount: &cents}).ResolveAmount("USD"); err != nil || got != 1050 {
		t.Fatalf("expected 1050, got %d (%v)", got, err)
	}
	if got, err := (AmountRequest{AmountDecimal: "10.5"}).ResolveAmount("USD"); err != nil || got != 1050 {
		t.Fatalf("expected 1050, got %d (%v)", got, err)
	}
	if got, err := (AmountRequest{AmountDecimal: "1050"}).ResolveAmount("JPY"); err != nil || got != 1050 {
		t.Fatalf("expected 1050 yen, got %d (%v)", got, err)
	}
	if _, err := (AmountRequest{}).ResolveAmount("USD"); !errors.Is(err, ErrMissingAmount) {
		t.Fatalf("expected ErrMissingAmount, got %v", err)
	}
	if _, err := (AmountRequest{Amount: &cents, AmountDecimal: "1"}).ResolveAmount("USD"); !errors.Is(err, ErrAmbiguousAmount) {
		t.Fatalf("expected ErrAmbiguousAmount, got %v", err)
	}
	if _, err := (AmountRequest{AmountDecimal: "ten"}).ResolveAmount("USD"); !errors.Is(err, ErrInvalidDecimal) {
		t.Fatalf("expected ErrInvalidDecimal, got %v", err)
	}
}

func TestCardRequest_Validate(t *testing.T) {
	if err := (CardRequest{Number: "4111111111111111", Month: 1, Year: 2020}).Validate(); err != nil {
		t.Fatalf("expired cards reach the processor: %v", err)
	}
	if err := (CardRequest{Number: "4111111111111111", Month: 13, Year: 2026}).Validate(); !errors.Is(err, expiry.ErrInvalidExpiry) {
		t.Fatalf("expected ErrInvalidExpiry, got %v", err)
	}
	if err := (CardRequest{Month: 9, Year: 2030}).Validate(); !errors.Is(err, ErrMissingCard) {
		t.Fatalf("expected ErrMissingCard, got %v", err)
	}
	if err := (CardRequest{Token: "tok", Brand: "visa"}).Validate(); err != nil {
		t.Fatalf("tokenized cards skip expiry checks: %v", err)
	}
}

func TestCardRequest_ToEntity(t *testing.T) {
	var nilCard *CardRequest
	if nilCard.ToEntity() != nil {
		t.Fatalf("expected nil card")
	}
	c := (&CardRequest{Number: " 4111 1111 1111 1111 ", Month: 9, Year: 2030, FirstName: " Longbob "}).ToEntity()
	if c.Number != "4111111111111111" || c.FirstName != "Longbob" || c.Month != 9 {
		t.Fatalf("unexpected card: %+v", c)
	}
}
