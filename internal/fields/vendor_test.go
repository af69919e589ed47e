package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack/docparse/internal/model"
)

func TestVendorLabelAnchored(t *testing.T) {
	assert.Equal(t, "Acme Trading Co.", Vendor("From: Acme Trading Co.\nTotal ₹500"))
	assert.Equal(t, "Croma Retail", Vendor("Vendor: Croma Retail"))
	assert.Equal(t, "Reliance Digital", Vendor("Bill To: Reliance Digital"))
}

func TestVendorBareLineFallback(t *testing.T) {
	// No label-anchored pattern present; the company line at the top of
	// the document must still resolve.
	text := "Amazon India Private Limited\nInvoice #123"
	assert.Equal(t, "Amazon India Private Limited", Vendor(text))
}

func TestVendorForwardedSubject(t *testing.T) {
	assert.Equal(t, "Myntra", Vendor("Your package with MYNTRA is delivered"))
}

func TestVendorKnownListIsCaseSensitive(t *testing.T) {
	// The known-vendor alternation matches the upper-cased forms used in
	// email subjects. Mixed-case prose must fall through to the
	// bare-line heuristic instead of truncating the full company name.
	text := "Amazon India Private Limited\nOrder total ₹999"
	assert.Equal(t, "Amazon India Private Limited", Vendor(text))
}

func TestVendorUnknownSentinel(t *testing.T) {
	assert.Equal(t, model.UnknownVendor, Vendor("1234 5678\n₹100"))
	assert.Equal(t, model.UnknownVendor, Vendor(""))
}

func TestVendorBareLineRejectsDigitsAndLength(t *testing.T) {
	assert.Equal(t, model.UnknownVendor, Vendor("Shop24\nsome other line with numbers 42"))
	assert.Equal(t, model.UnknownVendor, Vendor("Hi\nok"))
}
