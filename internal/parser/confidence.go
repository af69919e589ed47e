package parser

import (
	"math"
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// Two confidence policies exist side by side and are selected by the
// caller, never merged:
//
//   - FlatConfidence is the per-type constant used when a full document
//     (with PDF metadata) went through the cascade.
//   - WeightedConfidence scores extraction completeness and is used when
//     no document metadata backs the text, e.g. direct text input whose
//     provenance is unknown.

// FlatConfidence returns the fixed confidence for a classified document.
// textInput marks the cascade-skipping direct-text mode, which is
// trusted slightly less than a parsed document of a recognized type.
func FlatConfidence(docType model.DocumentType, textInput bool) float64 {
	if textInput {
		return 0.7
	}
	switch docType {
	case model.DocumentTypeInvoice, model.DocumentTypeWarranty, model.DocumentTypeRefund:
		return 0.8
	default:
		return 0.6
	}
}

// WeightedConfidence scores how complete the extraction came out:
// 0.2 for a non-trivial text, +0.3 when an amount was found, +0.2 for an
// invoice number, +0.2 for a resolved vendor, +0.1 when the text carries
// currency markers at all. Capped at 1.0.
func WeightedConfidence(text string, doc *model.ExtractedDocument) float64 {
	confidence := 0.0
	if len(text) > 50 {
		confidence += 0.2
	}
	if doc.Amount > 0 {
		confidence += 0.3
	}
	if doc.InvoiceNumber != "" {
		confidence += 0.2
	}
	if doc.Vendor != "" && doc.Vendor != model.UnknownVendor {
		confidence += 0.2
	}
	if hasCurrencyMarker(text) {
		confidence += 0.1
	}
	return math.Min(confidence, 1.0)
}

func hasCurrencyMarker(text string) bool {
	if strings.Contains(text, "₹") {
		return true
	}
	lower := strings.ToLower(text)
	return strings.Contains(lower, "rs.") || strings.Contains(lower, "rs ") ||
		strings.Contains(lower, "inr") || strings.Contains(lower, "rupee")
}
