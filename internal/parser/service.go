// Package parser is the top-level entry point: it sequences the
// extraction cascade, classification, field extraction and type-specific
// record assembly into one ExtractedDocument per input.
package parser

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fintrack/docparse/internal/classify"
	"github.com/fintrack/docparse/internal/extract"
	"github.com/fintrack/docparse/internal/fields"
	"github.com/fintrack/docparse/internal/model"
	"github.com/fintrack/docparse/internal/textutil"
	"github.com/fintrack/docparse/internal/warranty"
)

// Service wires the pipeline stages together. Every public method is safe
// for concurrent use across independent documents; no call depends on
// state from a prior call.
type Service struct {
	cascade  *extract.Cascade
	analyzer *warranty.Analyzer
	logger   *slog.Logger
}

func NewService(cascade *extract.Cascade, analyzer *warranty.Analyzer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{cascade: cascade, analyzer: analyzer, logger: logger}
}

// ParseDocument runs the full pipeline over an in-memory document: the
// extraction cascade, then classification and field extraction on the
// cleaned text. The only error is an unreadable byte stream; every lesser
// problem degrades to partial fields and a lower confidence.
func (s *Service) ParseDocument(ctx context.Context, data []byte, filename string) (*model.ExtractedDocument, error) {
	res, err := s.cascade.Extract(ctx, data, filename)
	if err != nil {
		return nil, err
	}
	doc := s.Extract(res.CleanedText, filename)
	if res.Metadata.Pages == 0 {
		// No document metadata backs this text, so score the
		// extraction completeness instead of trusting the type.
		doc.Confidence = WeightedConfidence(res.CleanedText, doc)
	}
	s.logger.Info("document parsed",
		"filename", filename,
		"type", doc.DocumentType,
		"method", res.Method,
		"confidence", doc.Confidence)
	return doc, nil
}

// ParseFile reads and parses a document from disk.
func (s *Service) ParseFile(ctx context.Context, path string) (*model.ExtractedDocument, error) {
	res, err := s.cascade.ExtractFile(ctx, path)
	if err != nil {
		return nil, err
	}
	doc := s.Extract(res.CleanedText, filepath.Base(path))
	if res.Metadata.Pages == 0 {
		doc.Confidence = WeightedConfidence(res.CleanedText, doc)
	}
	return doc, nil
}

// ParseText skips the cascade and extracts fields from already-extracted
// text, e.g. an email body. hint forces the document type when the caller
// already knows it; pass model.DocumentType("") or "auto" to classify.
func (s *Service) ParseText(text, filename string, hint model.DocumentType) *model.ExtractedDocument {
	cleaned := textutil.Clean(text)
	var docType model.DocumentType
	if hint == "" || hint == "auto" {
		docType = classify.Classify(cleaned, filename)
	} else {
		docType = hint
	}
	doc := s.assemble(cleaned, filename, docType)
	doc.Confidence = FlatConfidence(docType, true)
	return doc
}

// Extract implements the orchestration contract over cleaned text:
// classify, pull the common fields, assemble the type-specific payload,
// assign the per-type flat confidence.
func (s *Service) Extract(cleanedText, filename string) *model.ExtractedDocument {
	docType := classify.Classify(cleanedText, filename)
	doc := s.assemble(cleanedText, filename, docType)
	doc.Confidence = FlatConfidence(docType, false)
	return doc
}

// AnalyzeWarranty runs the cascade over the document and analyzes the
// warranty fields as of now.
func (s *Service) AnalyzeWarranty(ctx context.Context, data []byte, filename string, now time.Time) (*model.WarrantyAnalysisResult, error) {
	res, err := s.cascade.Extract(ctx, data, filename)
	if err != nil {
		return nil, err
	}
	text := res.CleanedText
	wd := warrantyData(text)
	return s.analyzer.Analyze(wd, text, now), nil
}

// Classify exposes the classifier for composition and testing.
func (s *Service) Classify(text, filename string) model.DocumentType {
	return classify.Classify(text, filename)
}

func (s *Service) assemble(text, filename string, docType model.DocumentType) *model.ExtractedDocument {
	doc := &model.ExtractedDocument{
		DocumentType:  docType,
		Filename:      filename,
		Vendor:        fields.Vendor(text),
		Amount:        fields.Amount(text),
		Date:          fields.Date(text),
		InvoiceNumber: fields.InvoiceNumber(text),
		RawText:       model.TruncateRawText(text),
	}

	switch docType {
	case model.DocumentTypeInvoice:
		doc.InvoiceData = &model.InvoiceData{
			InvoiceNumber: doc.InvoiceNumber,
			Vendor:        doc.Vendor,
			Amount:        doc.Amount,
			Date:          doc.Date,
			Products:      fields.Products(text),
			TaxAmount:     fields.TaxAmount(text),
			PaymentMethod: fields.PaymentMethod(text),
			ShippingCost:  fields.ShippingCost(text),
			Discount:      fields.Discount(text),
			TotalAmount:   doc.Amount,
		}
	case model.DocumentTypeWarranty:
		wd := warrantyData(text)
		wd.Vendor = doc.Vendor
		doc.WarrantyData = wd
	case model.DocumentTypeRefund:
		doc.RefundData = &model.RefundData{
			Vendor:        doc.Vendor,
			RefundAmount:  doc.Amount,
			RefundReason:  fields.RefundReason(text),
			RefundStatus:  fields.RefundStatus(text),
			RefundMethod:  fields.RefundMethod(text),
			RefundDate:    doc.Date,
			TransactionID: doc.InvoiceNumber,
		}
	}
	return doc
}

// warrantyData gathers every warranty field from the text. The
// registration date falls back to the document's general date when no
// registration-specific label is present.
func warrantyData(text string) *model.WarrantyData {
	regDate := fields.RegistrationDate(text)
	if regDate == "" {
		regDate = fields.Date(text)
	}
	return &model.WarrantyData{
		Vendor:           fields.Vendor(text),
		ProductName:      fields.ProductName(text),
		WarrantyPeriod:   fields.WarrantyPeriod(text),
		WarrantyTerms:    fields.WarrantyTerms(text),
		WarrantyStatus:   fields.WarrantyStatus(text),
		RegistrationDate: regDate,
		ContactInfo:      fields.ContactInfo(text),
		SerialNumber:     fields.SerialNumber(text),
		ModelNumber:      fields.ModelNumber(text),
	}
}
