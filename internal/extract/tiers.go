package extract

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/fintrack/docparse/internal/textutil"
)

// columnGap is the horizontal gap (in PDF points) between two words that is
// treated as a column boundary when reconstructing tables.
const columnGap = 24.0

// extractStructured is tier 1: row-ordered text via GetTextByRow, with a
// companion pass that reconstructs table-like rows joined with " | ".
// The second return value reports whether the PDF could be opened.
func (c *Cascade) extractStructured(data []byte) (text string, opened bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("structured extraction panicked", "panic", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		c.logger.Warn("structured extraction failed to open PDF", "error", err)
		return "", false
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		pageText, tableText := c.structuredPage(reader, pageNum)
		if pageText == "" || !textutil.IsReadable(pageText) {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n", pageNum)
		b.WriteString(pageText)
		if tableText != "" {
			b.WriteString("\n--- Tables ---\n")
			b.WriteString(tableText)
		}
	}
	return b.String(), true
}

// structuredPage extracts one page's row text and its table companion.
// Page-level failures are swallowed; the cascade treats them as "this page
// yielded nothing".
func (c *Cascade) structuredPage(reader *pdf.Reader, pageNum int) (pageText, tableText string) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("page extraction panicked", "page", pageNum, "panic", r)
			pageText, tableText = "", ""
		}
	}()

	page := reader.Page(pageNum)
	if page.V.IsNull() {
		return "", ""
	}

	rows, err := page.GetTextByRow()
	if err != nil {
		c.logger.Warn("row extraction failed", "page", pageNum, "error", err)
		return "", ""
	}

	var lines, tableLines []string
	for _, row := range rows {
		words := make([]string, 0, len(row.Content))
		for _, word := range row.Content {
			if w := strings.TrimSpace(word.S); w != "" {
				words = append(words, w)
			}
		}
		if len(words) == 0 {
			continue
		}
		lines = append(lines, strings.Join(words, " "))

		if cells := rowCells(row.Content); len(cells) >= 2 {
			tableLines = append(tableLines, strings.Join(cells, " | "))
		}
	}

	return strings.Join(lines, "\n"), strings.Join(tableLines, "\n")
}

// rowCells groups a row's words into table cells using horizontal gaps as
// column boundaries.
func rowCells(words []pdf.Text) []string {
	var cells []string
	var current []string
	lastEnd := 0.0

	for i, word := range words {
		w := strings.TrimSpace(word.S)
		if w == "" {
			continue
		}
		if i > 0 && word.X-lastEnd > columnGap && len(current) > 0 {
			cells = append(cells, strings.Join(current, " "))
			current = current[:0]
		}
		current = append(current, w)
		lastEnd = word.X + word.W
	}
	if len(current) > 0 {
		cells = append(cells, strings.Join(current, " "))
	}
	return cells
}

// extractBasic is tier 2: plain-text extraction per page, a different
// decode path inside the same library. Used when the structured tier
// yields too little.
func (c *Cascade) extractBasic(data []byte) (text string, opened bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("basic extraction panicked", "panic", r)
			text = ""
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		c.logger.Warn("basic extraction failed to open PDF", "error", err)
		return "", false
	}

	var b strings.Builder
	for pageNum := 1; pageNum <= reader.NumPage(); pageNum++ {
		page := reader.Page(pageNum)
		if page.V.IsNull() {
			continue
		}
		content, err := page.GetPlainText(nil)
		if err != nil {
			c.logger.Warn("plain text extraction failed", "page", pageNum, "error", err)
			continue
		}
		if content == "" || !textutil.IsReadable(content) {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d ---\n", pageNum)
		b.WriteString(content)
	}
	return b.String(), true
}
