// Package warranty derives expiry, risk and advice from extracted
// warranty fields.
package warranty

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/fintrack/docparse/internal/model"
)

// expiryWarningWindow is the days-remaining threshold under which a
// warranty is flagged as expiring.
const expiryWarningWindow = 30

// highRiskWindow is the days-remaining threshold under which an
// expiring warranty is rated high risk instead of medium.
const highRiskWindow = 7

var periodPattern = regexp.MustCompile(`(\d+)\s*(year|yr|month|mo|day|d)`)

// warrantyHintKeywords drive the low-confidence fallback when no
// structured warranty data was extracted but the text still talks about
// warranties.
var warrantyHintKeywords = []string{
	"warranty", "guarantee", "coverage", "protection plan",
	"extended warranty", "warranty period", "warranty card",
}

// Analyzer turns a WarrantyData record into an assessment: expiry date,
// days remaining, a risk rating and human-readable findings.
type Analyzer struct {
	logger *slog.Logger
}

func NewAnalyzer(logger *slog.Logger) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{logger: logger}
}

// Analyze assesses a warranty as of the supplied reference time. data may
// be nil; text is the cleaned document text the fields were extracted
// from and feeds the keyword fallback when no structured warranty was
// found. The returned result is always non-nil. As a side effect the
// derived expiry date is written back into data.ExpiryDate.
func (a *Analyzer) Analyze(data *model.WarrantyData, text string, now time.Time) *model.WarrantyAnalysisResult {
	result := &model.WarrantyAnalysisResult{
		DocumentID:     "doc_" + uuid.NewString(),
		WarrantyData:   data,
		RiskAssessment: model.RiskLow,
	}
	result.WarrantyFound = data != nil && data.WarrantyPeriod != ""

	if !result.WarrantyFound {
		result.KeyFindings = append(result.KeyFindings, "No warranty information found in document")
		result.Recommendations = append(result.Recommendations,
			"Check if warranty information is available separately",
			"Contact vendor for warranty details")
		result.RiskAssessment = model.RiskMedium
		result.AnalysisConfidence = fallbackConfidence(text, result)
		return result
	}

	if data.RegistrationDate != "" {
		a.assessExpiry(data, now, result)
	}
	if data.WarrantyTerms != "" {
		result.KeyFindings = append(result.KeyFindings, "Warranty terms: "+data.WarrantyTerms)
	}
	if data.WarrantyStatus != model.WarrantyStatusUnknown {
		result.KeyFindings = append(result.KeyFindings, "Warranty status: "+data.WarrantyStatus)
		switch data.WarrantyStatus {
		case model.WarrantyStatusExpired:
			result.RiskAssessment = model.RiskHigh
			result.Recommendations = append(result.Recommendations,
				"Warranty is expired - consider purchasing extended warranty")
		case model.WarrantyStatusActive:
			result.Recommendations = append(result.Recommendations,
				"Warranty is active - keep all documentation")
		}
	}

	confidence := 0.8
	if data.ProductName != "" {
		confidence += 0.1
	}
	if data.ContactInfo != "" {
		confidence += 0.1
	}
	if data.WarrantyTerms != "" {
		confidence += 0.1
	}
	result.AnalysisConfidence = math.Min(confidence, 1.0)
	return result
}

// assessExpiry computes the expiry date from the registration date and
// the warranty period, then fills in the time-based findings, warnings
// and recommendations.
func (a *Analyzer) assessExpiry(data *model.WarrantyData, now time.Time, result *model.WarrantyAnalysisResult) {
	regDate, err := time.Parse("2006-01-02", data.RegistrationDate)
	if err != nil {
		a.logger.Warn("unparsable registration date", "value", data.RegistrationDate, "error", err)
		result.KeyFindings = append(result.KeyFindings, "Could not calculate warranty expiry date")
		return
	}
	expiry, ok := expiryDate(regDate, data.WarrantyPeriod)
	if !ok {
		result.KeyFindings = append(result.KeyFindings, "Could not calculate warranty expiry date")
		return
	}
	data.ExpiryDate = expiry.Format("2006-01-02")
	days := int(math.Floor(expiry.Sub(now).Hours() / 24))
	result.DaysUntilExpiry = days
	result.HasExpiry = true

	if days <= expiryWarningWindow {
		result.ExpiryWarning = true
		if days <= highRiskWindow {
			result.RiskAssessment = model.RiskHigh
		} else {
			result.RiskAssessment = model.RiskMedium
		}
	}

	result.KeyFindings = append(result.KeyFindings,
		"Warranty period: "+data.WarrantyPeriod,
		"Registration date: "+data.RegistrationDate,
		"Expiry date: "+data.ExpiryDate)
	if days > 0 {
		result.KeyFindings = append(result.KeyFindings, fmt.Sprintf("Days remaining: %d", days))
	} else {
		result.KeyFindings = append(result.KeyFindings, "Warranty has expired")
		result.RiskAssessment = model.RiskHigh
	}

	switch {
	case days <= 0:
		result.Recommendations = append(result.Recommendations,
			"Warranty has expired - check if extended warranty is available")
	case days <= expiryWarningWindow:
		result.Recommendations = append(result.Recommendations,
			"Warranty expires soon - consider registering for extended warranty",
			"Save warranty document and contact information")
	default:
		result.Recommendations = append(result.Recommendations,
			"Warranty is active - keep documentation safe",
			"Set reminder for warranty expiry")
	}
	if data.ProductName != "" {
		result.Recommendations = append(result.Recommendations,
			fmt.Sprintf("Register product %q with manufacturer", data.ProductName))
	}
	if data.ContactInfo != "" {
		result.Recommendations = append(result.Recommendations,
			"Save warranty contact information for future claims")
	}
}

// expiryDate adds the warranty period to the registration date using
// calendar arithmetic for whole years, so "1 year" from January 1st lands
// on the next January 1st regardless of leap days. Months approximate to
// 30 days each.
func expiryDate(regDate time.Time, period string) (time.Time, bool) {
	m := periodPattern.FindStringSubmatch(strings.ToLower(period))
	if m == nil {
		return time.Time{}, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return time.Time{}, false
	}
	switch m[2] {
	case "year", "yr":
		return regDate.AddDate(n, 0, 0), true
	case "month", "mo":
		return regDate.AddDate(0, 0, n*30), true
	default:
		return regDate.AddDate(0, 0, n), true
	}
}

func fallbackConfidence(text string, result *model.WarrantyAnalysisResult) float64 {
	lower := strings.ToLower(text)
	for _, kw := range warrantyHintKeywords {
		if strings.Contains(lower, kw) {
			result.KeyFindings = append(result.KeyFindings,
				"Warranty keywords found but no structured data extracted")
			return 0.3
		}
	}
	result.KeyFindings = append(result.KeyFindings, "No warranty-related content detected")
	return 0.1
}
