package money

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		minor    int64
		currency string
		want     string
	}{
		{100, "USD", "1.00"},
		{1000, "usd", "10.00"},
		{1, "USD", "0.01"},
		{0, "USD", "0.00"},
		{123456, "BRL", "1234.56"},
		{500, "JPY", "500"},
		{-250, "USD", "-2.50"},
	}
	for _, tc := range cases {
		if got := Format(tc.minor, tc.currency); got != tc.want {
			t.Fatalf("Format(%d, %s) = %q, want %q", tc.minor, tc.currency, got, tc.want)
		}
	}
}

func TestFloat(t *testing.T) {
	if got := Float(1999, "USD"); got != 19.99 {
		t.Fatalf("expected 19.99, got %v", got)
	}
	if got := Float(1999, "KRW"); got != 1999 {
		t.Fatalf("expected 1999, got %v", got)
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("10.5", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 1050 {
		t.Fatalf("expected 1050, got %d", got)
	}
	if _, err := Parse("ten", "USD"); err == nil {
		t.Fatalf("expected error for non-numeric amount")
	}
	if got := FromDecimal(decimal.RequireFromString("0.005"), "USD"); got != 1 {
		t.Fatalf("expected half to round up, got %d", got)
	}
}
