package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncateRawText(t *testing.T) {
	short := "Invoice #123"
	assert.Equal(t, short, TruncateRawText(short))

	long := strings.Repeat("a", 1500)
	got := TruncateRawText(long)
	assert.Len(t, got, 1003)
	assert.True(t, strings.HasSuffix(got, "..."))
}

func TestTruncateRawTextCountsRunes(t *testing.T) {
	// Truncation must not split a multi-byte rune.
	long := strings.Repeat("₹", 1200)
	got := TruncateRawText(long)
	assert.Equal(t, strings.Repeat("₹", 1000)+"...", got)
}
