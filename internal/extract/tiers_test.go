package extract

import (
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
)

func word(s string, x, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, W: w}
}

func TestRowCellsSplitsOnColumnGaps(t *testing.T) {
	row := []pdf.Text{
		word("Wireless", 10, 40),
		word("Headphones", 52, 50),
		word("₹2500.00", 200, 40),
	}
	assert.Equal(t, []string{"Wireless Headphones", "₹2500.00"}, rowCells(row))
}

func TestRowCellsSingleColumn(t *testing.T) {
	row := []pdf.Text{
		word("Thank", 10, 30),
		word("you", 42, 20),
	}
	assert.Equal(t, []string{"Thank you"}, rowCells(row))
}

func TestRowCellsIgnoresEmptyWords(t *testing.T) {
	row := []pdf.Text{
		word("  ", 10, 5),
		word("GST", 20, 20),
		word("₹557.64", 120, 30),
	}
	assert.Equal(t, []string{"GST", "₹557.64"}, rowCells(row))
}
