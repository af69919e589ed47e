// Package model defines the typed records produced by the extraction
// pipeline. All values are created fresh per extraction call and are not
// mutated afterwards, with one exception: WarrantyData.ExpiryDate is filled
// in by the warranty analyzer as a derived field.
package model

// DocumentType identifies the kind of commerce document a text was
// classified as.
type DocumentType string

const (
	DocumentTypeInvoice  DocumentType = "invoice"
	DocumentTypeWarranty DocumentType = "warranty"
	DocumentTypeRefund   DocumentType = "refund"
	DocumentTypeGeneric  DocumentType = "document"
	DocumentTypeEmail    DocumentType = "email"
)

// UnknownVendor is the sentinel used when no vendor could be extracted.
// ExtractedDocument.Vendor is never empty.
const UnknownVendor = "Unknown Vendor"

// Warranty status values.
const (
	WarrantyStatusActive  = "active"
	WarrantyStatusExpired = "expired"
	WarrantyStatusUnknown = "unknown"
)

// Refund status values.
const (
	RefundStatusProcessed = "processed"
	RefundStatusPending   = "pending"
	RefundStatusRejected  = "rejected"
	RefundStatusUnknown   = "unknown"
)

// Risk assessment levels for warranty analysis.
const (
	RiskLow    = "low"
	RiskMedium = "medium"
	RiskHigh   = "high"
)

// ProductItem is a single line item on an invoice.
type ProductItem struct {
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	SKU         string  `json:"sku,omitempty"`
}

// InvoiceData holds the invoice-specific payload of an extracted document.
type InvoiceData struct {
	InvoiceNumber string        `json:"invoice_number,omitempty"`
	Vendor        string        `json:"vendor"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date,omitempty"`
	Products      []ProductItem `json:"products"`
	TaxAmount     float64       `json:"tax_amount"`
	PaymentMethod string        `json:"payment_method,omitempty"`
	ShippingCost  float64       `json:"shipping_cost"`
	Discount      float64       `json:"discount"`
	TotalAmount   float64       `json:"total_amount"`
}

// WarrantyData holds warranty-specific fields. WarrantyPeriod is the raw
// matched phrase (e.g. "1 year warranty"), not decomposed at this layer.
type WarrantyData struct {
	Vendor           string `json:"vendor"`
	ProductName      string `json:"product_name,omitempty"`
	WarrantyPeriod   string `json:"warranty_period,omitempty"`
	WarrantyTerms    string `json:"warranty_terms,omitempty"`
	WarrantyStatus   string `json:"warranty_status"`
	RegistrationDate string `json:"registration_date,omitempty"`
	ExpiryDate       string `json:"expiry_date,omitempty"`
	ContactInfo      string `json:"contact_info,omitempty"`
	SerialNumber     string `json:"serial_number,omitempty"`
	ModelNumber      string `json:"model_number,omitempty"`
}

// RefundData holds refund-specific fields.
type RefundData struct {
	Vendor        string  `json:"vendor"`
	RefundAmount  float64 `json:"refund_amount"`
	RefundReason  string  `json:"refund_reason,omitempty"`
	RefundStatus  string  `json:"refund_status"`
	RefundMethod  string  `json:"refund_method,omitempty"`
	RefundDate    string  `json:"refund_date,omitempty"`
	TransactionID string  `json:"transaction_id,omitempty"`
}

// ExtractedDocument is the top-level output of the extraction pipeline.
// Exactly one of InvoiceData, WarrantyData, RefundData is non-nil, matching
// DocumentType. RawText is truncated to 1000 characters plus an ellipsis.
type ExtractedDocument struct {
	DocumentType  DocumentType  `json:"document_type"`
	Filename      string        `json:"filename"`
	Vendor        string        `json:"vendor"`
	Amount        float64       `json:"amount"`
	Date          string        `json:"date,omitempty"`
	InvoiceNumber string        `json:"invoice_number,omitempty"`
	InvoiceData   *InvoiceData  `json:"invoice_data,omitempty"`
	WarrantyData  *WarrantyData `json:"warranty_data,omitempty"`
	RefundData    *RefundData   `json:"refund_data,omitempty"`
	RawText       string        `json:"raw_text"`
	Confidence    float64       `json:"confidence"`
}

// WarrantyAnalysisResult is the output of the warranty analyzer.
type WarrantyAnalysisResult struct {
	DocumentID         string        `json:"document_id"`
	WarrantyFound      bool          `json:"warranty_found"`
	WarrantyData       *WarrantyData `json:"warranty_data,omitempty"`
	AnalysisConfidence float64       `json:"analysis_confidence"`
	KeyFindings        []string      `json:"key_findings"`
	Recommendations    []string      `json:"recommendations"`
	RiskAssessment     string        `json:"risk_assessment"`
	ExpiryWarning      bool          `json:"expiry_warning"`
	DaysUntilExpiry    int           `json:"days_until_expiry"`
	HasExpiry          bool          `json:"has_expiry"`
}

// BatchResult aggregates the outcome of parsing several documents in one
// CLI invocation.
type BatchResult struct {
	TotalDocuments        int                  `json:"total_documents"`
	ProcessedDocuments    int                  `json:"processed_documents"`
	SuccessfulExtractions int                  `json:"successful_extractions"`
	WarrantyDocuments     int                  `json:"warranty_documents"`
	FailedDocuments       int                  `json:"failed_documents"`
	Results               []*ExtractedDocument `json:"results"`
	Errors                []string             `json:"errors,omitempty"`
}

// TruncateRawText applies the raw-text storage rule: at most 1000
// characters, with "..." appended when truncated.
func TruncateRawText(text string) string {
	const limit = 1000
	runes := []rune(text)
	if len(runes) > limit {
		return string(runes[:limit]) + "..."
	}
	return text
}
