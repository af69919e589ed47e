// Package fields turns cleaned document text into structured commerce
// fields with ordered regular-expression policies. Every extractor is
// independently callable, takes only the text, and degrades to a
// documented zero value instead of returning an error: missing data is an
// expected outcome for this corpus, not a failure.
package fields

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Amount returns the largest monetary value found anywhere in the text.
// Taking the maximum across every currency pattern is the policy for
// picking the grand total out of a document that also lists line items,
// taxes and subtotals. Returns 0 when no pattern matches.
func Amount(text string) float64 {
	max := 0.0
	for _, p := range currencyPatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			v, ok := parseMoney(m[1])
			if ok && v > max {
				max = v
			}
		}
	}
	return max
}

// firstDecimal applies an ordered pattern list and returns the first
// parsable numeric capture.
func firstDecimal(text string, patterns []*regexp.Regexp) float64 {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			if v, ok := parseMoney(m[1]); ok {
				return v
			}
		}
	}
	return 0
}

// TaxAmount returns the first tax figure (Tax, GST, CGST, SGST, IGST, VAT,
// Service Tax), or 0.
func TaxAmount(text string) float64 { return firstDecimal(text, taxPatterns) }

// ShippingCost returns the first shipping, delivery or freight figure, or 0.
func ShippingCost(text string) float64 { return firstDecimal(text, shippingPatterns) }

// Discount returns the first discount figure, or 0.
func Discount(text string) float64 { return firstDecimal(text, discountPatterns) }

// PaymentMethod scans the text for the fixed payment vocabulary and
// returns the first entry present, title-cased. Empty when none match.
func PaymentMethod(text string) string {
	lower := strings.ToLower(text)
	for _, method := range paymentMethods {
		if strings.Contains(lower, method) {
			return titleCase(method)
		}
	}
	return ""
}

// Date returns the first parsable date in the text normalized to
// YYYY-MM-DD, or "" when nothing parses. Numeric forms are read
// day-first unless the year leads; two-digit years land in 20xx.
func Date(text string) string {
	for _, p := range datePatterns {
		for _, m := range p.FindAllStringSubmatch(text, -1) {
			if normalized, ok := parseDate(m[1]); ok {
				return normalized
			}
		}
	}
	return ""
}

// InvoiceNumber returns the first label-anchored identifier longer than
// two characters, or "". The length floor rejects bare ordinals that
// follow words like "Order" in prose.
func InvoiceNumber(text string) string {
	for _, p := range invoiceNumberPatterns {
		if m := p.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > 2 {
				return candidate
			}
		}
	}
	return ""
}

// firstLabeled applies an ordered pattern list and returns the first
// trimmed capture whose length falls strictly between min and max.
func firstLabeled(text string, patterns []*regexp.Regexp, min, max int) string {
	for _, p := range patterns {
		if m := p.FindStringSubmatch(text); m != nil {
			candidate := strings.TrimSpace(m[1])
			if len(candidate) > min && len(candidate) < max {
				return candidate
			}
		}
	}
	return ""
}

func parseMoney(s string) (float64, bool) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// parseDate normalizes a matched date token to YYYY-MM-DD.
func parseDate(token string) (string, bool) {
	token = strings.TrimSpace(token)
	if strings.ContainsAny(token, "/-") {
		return parseNumericDate(token)
	}
	for _, layout := range []string{"2 January 2006", "2 Jan 2006", "2 January 06", "2 Jan 06"} {
		if t, err := time.Parse(layout, token); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

func parseNumericDate(token string) (string, bool) {
	parts := strings.FieldsFunc(token, func(r rune) bool { return r == '/' || r == '-' })
	if len(parts) != 3 {
		return "", false
	}
	var dayPart, monthPart, yearPart string
	if len(parts[0]) == 4 {
		yearPart, monthPart, dayPart = parts[0], parts[1], parts[2]
	} else {
		dayPart, monthPart, yearPart = parts[0], parts[1], parts[2]
	}
	day, err1 := strconv.Atoi(dayPart)
	month, err2 := strconv.Atoi(monthPart)
	year, err3 := strconv.Atoi(yearPart)
	if err1 != nil || err2 != nil || err3 != nil {
		return "", false
	}
	if year < 100 {
		year += 2000
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return "", false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (e.g. Feb 30 -> Mar 2); reject those.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return "", false
	}
	return t.Format("2006-01-02"), true
}

// titleCase upper-cases the first letter of each space-separated word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
