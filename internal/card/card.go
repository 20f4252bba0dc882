package card

import (
	"regexp"
	"strings"
)

const (
	BrandVisa       = "Visa"
	BrandMastercard = "Mastercard"
	BrandAmex       = "American Express"
	BrandDiscover   = "Discover"
	BrandMaestro    = "Maestro"
	BrandUnknown    = "Unknown"
)

// prefix rules checked in order, first match wins
var brandRules = []struct {
	brand   string
	pattern *regexp.Regexp
}{
	{BrandVisa, regexp.MustCompile(`^4`)},
	{BrandMastercard, regexp.MustCompile(`^(5[1-5]|222[1-9]|22[3-9]\d|2[3-6]\d{2}|27[01]\d|2720)`)},
	{BrandAmex, regexp.MustCompile(`^3[47]`)},
	{BrandDiscover, regexp.MustCompile(`^6(?:011|5)`)},
	{BrandMaestro, regexp.MustCompile(`^(50|5[6-9]|6[0-9])`)},
}

// DetectBrand reports the card brand for a digit-only PAN.
func DetectBrand(digits string) string {
	for _, rule := range brandRules {
		if rule.pattern.MatchString(digits) {
			return rule.brand
		}
	}
	return BrandUnknown
}

// Digits strips everything except decimal digits.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatNumber re-groups a card number into blocks of 4 for display.
// Input is reduced to digits and capped at 16.
func FormatNumber(s string) string {
	digits := Digits(s)
	if len(digits) > 16 {
		digits = digits[:16]
	}

	var groups []string
	for len(digits) > 4 {
		groups = append(groups, digits[:4])
		digits = digits[4:]
	}
	if digits != "" {
		groups = append(groups, digits)
	}
	return strings.Join(groups, " ")
}

// FormatExpiry normalizes expiry input towards MM/YY. One or two digits are
// returned as typed so the user can keep editing; three or more get the slash.
func FormatExpiry(s string) string {
	digits := Digits(s)
	if len(digits) > 4 {
		digits = digits[:4]
	}
	if len(digits) <= 2 {
		return digits
	}
	return digits[:2] + "/" + digits[2:]
}

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/\d{2}$`)

// ValidExpiry reports whether s is MM/YY with a real month.
func ValidExpiry(s string) bool {
	return expiryPattern.MatchString(s)
}

var cvvPattern = regexp.MustCompile(`^\d{3,4}$`)

// ValidCVV reports whether s is a 3 or 4 digit security code.
func ValidCVV(s string) bool {
	return cvvPattern.MatchString(s)
}

// Last4 returns the trailing four digits of a digit-only PAN.
func Last4(digits string) string {
	if len(digits) < 4 {
		return digits
	}
	return digits[len(digits)-4:]
}
