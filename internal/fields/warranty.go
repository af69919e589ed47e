package fields

import (
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// WarrantyPeriod returns the full matched warranty phrase ("2 year
// warranty", "warranty: 6 months", ...) or "". The raw phrase is kept
// verbatim so the analyzer can parse the duration out of it later.
func WarrantyPeriod(text string) string {
	for _, p := range warrantyPeriodPatterns {
		if m := p.FindString(text); m != "" {
			return strings.TrimSpace(m)
		}
	}
	return ""
}

// ProductName returns the first Product/Item/Model labeled value, or "".
func ProductName(text string) string {
	return firstLabeled(text, productNamePatterns, 3, 100)
}

// WarrantyTerms returns the first Terms/Conditions/Coverage labeled
// value, or "".
func WarrantyTerms(text string) string {
	return firstLabeled(text, warrantyTermsPatterns, 3, 200)
}

// WarrantyStatus classifies the text as "active", "expired" or "unknown"
// from plain status vocabulary.
func WarrantyStatus(text string) string {
	lower := strings.ToLower(text)
	for _, w := range []string{"active", "valid", "current"} {
		if strings.Contains(lower, w) {
			return model.WarrantyStatusActive
		}
	}
	for _, w := range []string{"expired", "invalid", "void"} {
		if strings.Contains(lower, w) {
			return model.WarrantyStatusExpired
		}
	}
	return model.WarrantyStatusUnknown
}

// RegistrationDate returns the warranty registration or purchase date
// normalized to YYYY-MM-DD, or "".
func RegistrationDate(text string) string {
	for _, p := range registrationDatePatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if normalized, ok := parseDate(m[1]); ok {
				return normalized
			}
		}
	}
	return ""
}

// SerialNumber returns the first serial-number identifier, or "".
func SerialNumber(text string) string {
	if m := serialNumberPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ModelNumber returns the first model-number identifier, or "".
func ModelNumber(text string) string {
	if m := modelNumberPattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

// ContactInfo returns the first email address or Indian phone number in
// the text, preferring email, or "".
func ContactInfo(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	if m := phonePattern.FindString(text); m != "" {
		return strings.TrimSpace(m)
	}
	return ""
}
