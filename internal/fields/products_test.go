package fields

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack/docparse/internal/model"
)

func TestProductsQuantityLine(t *testing.T) {
	items := Products("1x Wireless Headphones - ₹2500.00")
	require.Len(t, items, 1)
	assert.Equal(t, model.ProductItem{Name: "Wireless Headphones", Quantity: 1, UnitPrice: 2500.0}, items[0])
}

func TestProductsMultipleLines(t *testing.T) {
	text := "2x USB Cable - ₹299.00\nLaptop Stand ₹1499.00\n3x Notebook - ₹150"
	items := Products(text)
	require.Len(t, items, 3)
	assert.Equal(t, "USB Cable", items[0].Name)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, "Laptop Stand", items[1].Name)
	assert.Equal(t, 1, items[1].Quantity)
	assert.Equal(t, 1499.0, items[1].UnitPrice)
	assert.Equal(t, 3, items[2].Quantity)
}

func TestProductsExcludesSummaryLines(t *testing.T) {
	text := "1x Wireless Mouse - ₹800.00\nSubtotal ₹3200.00\nTotal Amount ₹3776.00\nGST charged ₹576.00"
	items := Products(text)
	require.Len(t, items, 1)
	assert.Equal(t, "Wireless Mouse", items[0].Name)
}

func TestProductsSkipsZeroQuantity(t *testing.T) {
	items := Products("0x Broken Widget - ₹10.00\n1x Working Widget - ₹20.00")
	require.Len(t, items, 1)
	assert.Equal(t, "Working Widget", items[0].Name)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestProductsSkipsShortLines(t *testing.T) {
	assert.Empty(t, Products("A ₹5.00\nok\n"))
}
