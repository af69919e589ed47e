package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fintrack/docparse/internal/model"
)

func TestWarrantyPeriodKeepsRawPhrase(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"This product carries a 2 year warranty from purchase", "2 year warranty"},
		{"Warranty period: 6 month", "Warranty period: 6 month"},
		{"Includes 90 day coverage on parts", "90 day coverage"},
		{"no such clause", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, WarrantyPeriod(tt.text), "input %q", tt.text)
	}
}

func TestWarrantyStatus(t *testing.T) {
	assert.Equal(t, model.WarrantyStatusActive, WarrantyStatus("Warranty is currently valid"))
	assert.Equal(t, model.WarrantyStatusExpired, WarrantyStatus("This warranty is void"))
	assert.Equal(t, model.WarrantyStatusUnknown, WarrantyStatus("warranty card"))
}

func TestProductNameAndTerms(t *testing.T) {
	text := "Product: Atomberg Ceiling Fan\nTerms: covers manufacturing defects only"
	assert.Equal(t, "Atomberg Ceiling Fan", ProductName(text))
	assert.Equal(t, "covers manufacturing defects only", WarrantyTerms(text))
}

func TestSerialAndModelNumbers(t *testing.T) {
	text := "Model No: AB-1200\nSerial Number: SN99887766"
	assert.Equal(t, "AB-1200", ModelNumber(text))
	assert.Equal(t, "SN99887766", SerialNumber(text))
}

func TestContactInfoPrefersEmail(t *testing.T) {
	text := "Support: support@atomberg.com or call 9876543210"
	assert.Equal(t, "support@atomberg.com", ContactInfo(text))
	assert.Equal(t, "9876543210", ContactInfo("call 9876543210 for claims"))
	assert.Equal(t, "", ContactInfo("no contact listed"))
}

func TestRegistrationDate(t *testing.T) {
	assert.Equal(t, "2024-01-01", RegistrationDate("Registration Date: 01/01/2024"))
	assert.Equal(t, "2023-06-15", RegistrationDate("Purchased on 15/06/2023"))
	assert.Equal(t, "", RegistrationDate("Date: 01/01/2024")) // not registration-specific
}
