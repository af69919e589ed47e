package fields

import (
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// Vendor resolves the issuing party with a three-tier fallback:
//
//  1. label-anchored patterns (From:, Vendor:, Bill To:, ...),
//  2. forwarded-email heuristics including a known Indian vendor list,
//  3. a bare company-name line near the top of the document.
//
// When every tier misses it returns model.UnknownVendor rather than "",
// so downstream consumers always have a displayable name.
func Vendor(text string) string {
	if v := labelVendor(text); v != "" {
		return v
	}
	if v := forwardedVendor(text); v != "" {
		return v
	}
	if v := bareLineVendor(text); v != "" {
		return v
	}
	return model.UnknownVendor
}

func labelVendor(text string) string {
	for _, p := range labelVendorPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 3 && len(candidate) < 100 {
				return candidate
			}
		}
	}
	return ""
}

func forwardedVendor(text string) string {
	for _, p := range forwardedVendorPatterns {
		m := p.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[1])
		candidate = vendorPrefixCleanup.ReplaceAllString(candidate, "")
		candidate = vendorSuffixCleanup.ReplaceAllString(candidate, "")
		candidate = strings.TrimSpace(candidate)
		if len(candidate) > 2 && len(candidate) < 50 {
			return titleCase(strings.ToLower(candidate))
		}
	}
	return ""
}

// bareLineVendor scans the first lines for something that looks like a
// company name printed on its own: letters only, no digits, plausible
// length. Invoices in this corpus routinely open with the issuer's name
// before any labeled field appears.
func bareLineVendor(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > 10 {
		lines = lines[:10]
	}
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if len(line) <= 5 || len(line) >= 50 {
			continue
		}
		if containsDigit.MatchString(line) {
			continue
		}
		if bareCompanyLine.MatchString(line) {
			return line
		}
	}
	return ""
}
