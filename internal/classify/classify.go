// Package classify assigns a document type from keyword density and
// filename hints. It is deliberately dumb: counting vocabulary hits is
// enough to separate warranties, refunds and invoices in this corpus,
// and anything ambiguous falls through to the generic type.
package classify

import (
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// minKeywordHits is how many vocabulary occurrences a category needs
// before the text alone (without a filename hint) decides the type.
// Occurrences are counted per mention, so one keyword repeated twice
// is enough.
const minKeywordHits = 2

var warrantyKeywords = []string{
	"warranty", "guarantee", "coverage", "protection plan",
	"extended warranty", "warranty period", "warranty card",
	"service warranty", "product warranty",
}

var refundKeywords = []string{
	"refund", "refunded", "reimbursement", "money back",
	"return", "returned", "cancellation", "cancelled",
	"refund processed", "refund initiated",
}

var invoiceKeywords = []string{
	"invoice", "bill", "receipt", "payment", "amount due",
	"total amount", "tax invoice", "billing", "paid",
	"order confirmation",
}

// Classify determines the document type from the cleaned text and the
// source filename. Categories are checked in precedence order warranty,
// refund, invoice: a warranty certificate routinely mentions the invoice
// it covers, so the more specific category must win. A category matches
// on minKeywordHits keyword occurrences, or a single token in the
// filename. Nothing matching returns the generic type.
func Classify(text, filename string) model.DocumentType {
	lower := strings.ToLower(text)
	name := strings.ToLower(filename)

	if countHits(lower, warrantyKeywords) >= minKeywordHits || strings.Contains(name, "warranty") {
		return model.DocumentTypeWarranty
	}
	if countHits(lower, refundKeywords) >= minKeywordHits || strings.Contains(name, "refund") {
		return model.DocumentTypeRefund
	}
	if countHits(lower, invoiceKeywords) >= minKeywordHits ||
		strings.Contains(name, "invoice") || strings.Contains(name, "bill") || strings.Contains(name, "receipt") {
		return model.DocumentTypeInvoice
	}
	return model.DocumentTypeGeneric
}

func countHits(lower string, keywords []string) int {
	hits := 0
	for _, kw := range keywords {
		hits += strings.Count(lower, kw)
	}
	return hits
}
