package textutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanIdempotent(t *testing.T) {
	inputs := []string{
		"",
		"Invoice #123",
		"Total:   ₹1,499.00\r\nPaid via UPI",
		"line one\n\n\n\n\nline two",
		`escaped\nnewline and\ttab`,
		`garbage \x41\x42\x43 mixed with text`,
		"  leading and trailing   \n\n  ",
		"--- Page 1 ---\nAcme Corp\n--- Page 2 ---\nTotals",
	}
	for _, input := range inputs {
		once := Clean(input)
		twice := Clean(once)
		assert.Equal(t, once, twice, "Clean must be idempotent for %q", input)
	}
}

func TestCleanNormalizesWhitespace(t *testing.T) {
	got := Clean("Vendor:    Acme   Corp\t\tLtd\n\n\n\n\nTotal: ₹100")
	assert.Equal(t, "Vendor: Acme Corp Ltd\n\nTotal: ₹100", got)
}

func TestCleanPreservesLineStructure(t *testing.T) {
	// Product and vendor extraction scan line by line; cleaning must not
	// flatten the document into one line.
	got := Clean("Amazon India Private Limited\nInvoice #123\n1x Mouse - ₹500.00")
	assert.Equal(t, 3, len(strings.Split(got, "\n")))
}

func TestCleanDecodesEscapes(t *testing.T) {
	got := Clean(`first\nsecond\tthird`)
	assert.Equal(t, "first\nsecond third", got)
}

func TestCleanStripsStructuralMarkers(t *testing.T) {
	got := Clean(`before endstream	endobj after`)
	assert.NotContains(t, got, "endstream")
	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")

	got = Clean(`text 4 0 obj << /Type /Page >> more`)
	assert.NotContains(t, got, "<<")
}

func TestCleanStripsEscapeRuns(t *testing.T) {
	got := Clean(`readable \x00\x01\xff text \101\102 here`)
	assert.NotContains(t, got, `\x`)
	assert.NotContains(t, got, `\101`)
	assert.Contains(t, got, "readable")
	assert.Contains(t, got, "here")
}

func TestIsReadable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"too short", "hi", false},
		{"whitespace only", "       \n\t  ", false},
		{"plain sentence", "Thank you for shopping with us. Total: ₹499.00", true},
		{"hex escapes", `Total \x41\x42 something longer`, false},
		{"octal escapes", `prefix \101\102\103 suffix padding`, false},
		{"stream marker", "some text endstream  endobj more text", false},
		{"object marker", "text obj << /Filter /FlateDecode", false},
		{"indirect reference", "content /Font 12 0 R trailing words", false},
		{"mostly unprintable", "ab\x00\x01\x02\x03\x04\x05\x06\x07\x08\x0b", false},
		{"hindi text", "कुल राशि ₹1,499.00 का भुगतान प्राप्त हुआ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsReadable(tt.text))
		})
	}
}
