package warranty

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/docparse/internal/model"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestAnalyzeExpiringWarranty(t *testing.T) {
	a := NewAnalyzer(nil)
	data := &model.WarrantyData{
		WarrantyPeriod:   "1 year",
		RegistrationDate: "2024-01-01",
		WarrantyStatus:   model.WarrantyStatusUnknown,
	}

	result := a.Analyze(data, "", date("2024-12-20"))

	require.True(t, result.WarrantyFound)
	require.True(t, result.HasExpiry)
	assert.Equal(t, "2025-01-01", data.ExpiryDate)
	assert.Equal(t, 12, result.DaysUntilExpiry)
	assert.True(t, result.ExpiryWarning)
	assert.Equal(t, model.RiskMedium, result.RiskAssessment)
	assert.Contains(t, result.KeyFindings, "Days remaining: 12")
	assert.Contains(t, result.Recommendations, "Warranty expires soon - consider registering for extended warranty")
}

func TestAnalyzeActiveWarranty(t *testing.T) {
	a := NewAnalyzer(nil)
	data := &model.WarrantyData{
		WarrantyPeriod:   "2 year warranty",
		RegistrationDate: "2024-06-01",
		WarrantyStatus:   model.WarrantyStatusUnknown,
	}

	result := a.Analyze(data, "", date("2024-07-01"))

	assert.Equal(t, "2026-06-01", data.ExpiryDate)
	assert.False(t, result.ExpiryWarning)
	assert.Equal(t, model.RiskLow, result.RiskAssessment)
	assert.Contains(t, result.Recommendations, "Set reminder for warranty expiry")
}

func TestAnalyzeExpiredWarranty(t *testing.T) {
	a := NewAnalyzer(nil)
	data := &model.WarrantyData{
		WarrantyPeriod:   "90 day",
		RegistrationDate: "2024-01-01",
		WarrantyStatus:   model.WarrantyStatusUnknown,
	}

	result := a.Analyze(data, "", date("2024-06-01"))

	assert.Negative(t, result.DaysUntilExpiry)
	assert.True(t, result.ExpiryWarning)
	assert.Equal(t, model.RiskHigh, result.RiskAssessment)
	assert.Contains(t, result.KeyFindings, "Warranty has expired")
	assert.Contains(t, result.Recommendations, "Warranty has expired - check if extended warranty is available")
}

func TestAnalyzeHighRiskWindow(t *testing.T) {
	a := NewAnalyzer(nil)
	data := &model.WarrantyData{
		WarrantyPeriod:   "1 year",
		RegistrationDate: "2024-01-01",
		WarrantyStatus:   model.WarrantyStatusUnknown,
	}

	result := a.Analyze(data, "", date("2024-12-28"))

	assert.Equal(t, 4, result.DaysUntilExpiry)
	assert.True(t, result.ExpiryWarning)
	assert.Equal(t, model.RiskHigh, result.RiskAssessment)
}

func TestAnalyzeMonthsApproximateToThirtyDays(t *testing.T) {
	a := NewAnalyzer(nil)
	data := &model.WarrantyData{
		WarrantyPeriod:   "6 month",
		RegistrationDate: "2024-01-01",
		WarrantyStatus:   model.WarrantyStatusUnknown,
	}

	a.Analyze(data, "", date("2024-02-01"))

	// 6 months count as 180 days, not calendar months.
	assert.Equal(t, "2024-06-29", data.ExpiryDate)
}

func TestAnalyzeConfidenceLayers(t *testing.T) {
	a := NewAnalyzer(nil)

	base := a.Analyze(&model.WarrantyData{WarrantyPeriod: "1 year"}, "", date("2024-01-01"))
	assert.InDelta(t, 0.8, base.AnalysisConfidence, 1e-9)

	full := a.Analyze(&model.WarrantyData{
		WarrantyPeriod: "1 year",
		ProductName:    "Ceiling Fan",
		ContactInfo:    "support@vendor.com",
		WarrantyTerms:  "manufacturing defects only",
	}, "", date("2024-01-01"))
	assert.InDelta(t, 1.0, full.AnalysisConfidence, 1e-9)
}

func TestAnalyzeNoWarrantyData(t *testing.T) {
	a := NewAnalyzer(nil)

	withKeywords := a.Analyze(nil, "this document mentions a warranty somewhere", date("2024-01-01"))
	assert.False(t, withKeywords.WarrantyFound)
	assert.Equal(t, model.RiskMedium, withKeywords.RiskAssessment)
	assert.InDelta(t, 0.3, withKeywords.AnalysisConfidence, 1e-9)
	assert.Contains(t, withKeywords.KeyFindings, "No warranty information found in document")

	unrelated := a.Analyze(nil, "an ordinary letter about nothing", date("2024-01-01"))
	assert.InDelta(t, 0.1, unrelated.AnalysisConfidence, 1e-9)
	assert.Contains(t, unrelated.KeyFindings, "No warranty-related content detected")
}

func TestAnalyzeDocumentIDsAreUnique(t *testing.T) {
	a := NewAnalyzer(nil)
	first := a.Analyze(nil, "", date("2024-01-01"))
	second := a.Analyze(nil, "", date("2024-01-01"))
	assert.NotEmpty(t, first.DocumentID)
	assert.NotEqual(t, first.DocumentID, second.DocumentID)
}
