// Package expiry renders card expiry dates in processor formats.
package expiry

import (
	"errors"
	"fmt"
)

// Format is a two-digit month/year layout.
type Format string

const (
	MMYY      Format = "MMYY"
	MMSlashYY Format = "MM/YY"
	MMDashYY  Format = "MM-YY"
)

var ErrInvalidExpiry = errors.New("invalid card expiry")

// Month returns the month as two digits.
func Month(month int) string {
	return fmt.Sprintf("%02d", month)
}

// Year returns the last two digits of a two- or four-digit year.
func Year(year int) string {
	return fmt.Sprintf("%02d", year%100)
}

// Render returns month/year in the given format, e.g. (9, 2026, MMSlashYY) -> "09/26".
func Render(month, year int, f Format) string {
	switch f {
	case MMSlashYY:
		return Month(month) + "/" + Year(year)
	case MMDashYY:
		return Month(month) + "-" + Year(year)
	default:
		return Month(month) + Year(year)
	}
}

// Validate checks that month and year can be rendered. Whether the card has
// expired is the processor's call; it answers with expired_card.
func Validate(month, year int) error {
	if month < 1 || month > 12 {
		return fmt.Errorf("%w: month %d", ErrInvalidExpiry, month)
	}
	if year < 0 {
		return fmt.Errorf("%w: year %d", ErrInvalidExpiry, year)
	}
	return nil
}
