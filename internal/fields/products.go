package fields

import (
	"strconv"
	"strings"

	"github.com/fintrack/docparse/internal/model"
)

// Products scans the text line by line for purchasable items. Two line
// shapes are recognized: "Nx Name - ₹price" with an explicit quantity,
// and a bare "Name ₹price" line. Lines shorter than 10 characters are
// skipped outright, and bare lines carrying a summary keyword (total,
// gst, shipping, ...) are totals rather than items and are excluded.
func Products(text string) []model.ProductItem {
	var items []model.ProductItem
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if len(line) < 10 {
			continue
		}
		if m := quantityProductLine.FindStringSubmatch(line); m != nil {
			qty, err := strconv.Atoi(m[1])
			if err != nil || qty < 1 {
				continue
			}
			price, ok := parseMoney(m[3])
			if !ok {
				continue
			}
			items = append(items, model.ProductItem{
				Name:      strings.TrimSpace(m[2]),
				Quantity:  qty,
				UnitPrice: price,
			})
			continue
		}
		if m := bareProductLine.FindStringSubmatch(line); m != nil {
			if isSummaryLine(line) {
				continue
			}
			price, ok := parseMoney(m[2])
			if !ok {
				continue
			}
			items = append(items, model.ProductItem{
				Name:      strings.TrimSpace(m[1]),
				Quantity:  1,
				UnitPrice: price,
			})
		}
	}
	return items
}

func isSummaryLine(line string) bool {
	lower := strings.ToLower(line)
	for _, kw := range summaryLineKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
