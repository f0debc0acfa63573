package entities

import "strings"

// AVSResult describes how the billing address matched issuer records.
type AVSResult struct {
	Code        string `json:"code"`
	Message     string `json:"message,omitempty"`
	StreetMatch string `json:"street_match,omitempty"`
	PostalMatch string `json:"postal_match,omitempty"`
}

// CVVResult describes whether the card security code matched.
type CVVResult struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

type avsEntry struct {
	message string
	street  string
	postal  string
}

var avsCodes = map[string]avsEntry{
	"A": {"Street address matches, but postal code does not match.", "Y", "N"},
	"B": {"Street address matches, but postal code not verified.", "Y", ""},
	"C": {"Street address and postal code do not match.", "N", "N"},
	"D": {"Street address and postal code match.", "Y", "Y"},
	"E": {"AVS data is invalid or AVS is not allowed for this card type.", "", ""},
	"F": {"Card member's name does not match, but billing postal code matches.", "", "Y"},
	"G": {"Non-U.S. issuing bank does not support AVS.", "", ""},
	"H": {"Card member's name does not match. Street address and postal code match.", "Y", "Y"},
	"I": {"Address not verified.", "", ""},
	"J": {"Card member's name, billing address, and postal code match.", "Y", "Y"},
	"K": {"Card member's name matches but billing address and billing postal code do not match.", "N", "N"},
	"L": {"Card member's name and billing postal code match, but billing address does not match.", "N", "Y"},
	"M": {"Street address and postal code match.", "Y", "Y"},
	"N": {"Street address and postal code do not match.", "N", "N"},
	"O": {"Card member's name and billing address match, but billing postal code does not match.", "Y", "N"},
	"P": {"Postal code matches, but street address not verified.", "", "Y"},
	"Q": {"Card member's name, billing address, and postal code match.", "Y", "Y"},
	"R": {"System unavailable.", "", ""},
	"S": {"U.S.-issuing bank does not support AVS.", "", ""},
	"T": {"Card member's name does not match, but street address matches.", "Y", "N"},
	"U": {"Address information unavailable.", "", ""},
	"V": {"Card member's name, billing address, and billing postal code match.", "Y", "Y"},
	"W": {"Street address does not match, but 9-digit postal code matches.", "N", "Y"},
	"X": {"Street address and 9-digit postal code match.", "Y", "Y"},
	"Y": {"Street address and 5-digit postal code match.", "Y", "Y"},
	"Z": {"Street address does not match, but 5-digit postal code matches.", "N", "Y"},
}

var cvvCodes = map[string]string{
	"D": "CVV check flagged transaction as suspicious",
	"I": "CVV failed data validation check",
	"M": "CVV matches",
	"N": "CVV does not match",
	"P": "CVV not processed",
	"S": "CVV should have been present",
	"U": "CVV request unable to be processed by issuer",
	"X": "Card does not support verification",
}

// NewAVSResult returns nil for an empty code. Unknown codes are kept without a message.
func NewAVSResult(code string) *AVSResult {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	e := avsCodes[code]
	return &AVSResult{Code: code, Message: e.message, StreetMatch: e.street, PostalMatch: e.postal}
}

// NewCVVResult returns nil for an empty code.
func NewCVVResult(code string) *CVVResult {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}
	return &CVVResult{Code: code, Message: cvvCodes[code]}
}
