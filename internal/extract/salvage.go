package extract

import (
	"regexp"
	"strings"
	"unicode"
)

// salvagePatterns scrape PDF text-object remnants out of an uninterpreted
// byte stream: text in parentheses, angle brackets, square brackets, name
// tokens, and long printable runs. Last-resort tier for corrupted files.
var salvagePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\(([^)]+)\)`),
	regexp.MustCompile(`<([^>]+)>`),
	regexp.MustCompile(`\[([^\]]+)\]`),
	regexp.MustCompile(`/([A-Za-z0-9 ]+)`),
	regexp.MustCompile(`([A-Za-z0-9\s]{10,})`),
}

// pdfKeywords are structural tokens a salvage fragment may consist of;
// fragments made only of these carry no content.
var pdfKeywords = map[string]struct{}{
	"obj": {}, "endobj": {}, "stream": {}, "endstream": {},
	"xref": {}, "startxref": {}, "trailer": {}, "null": {},
	"true": {}, "false": {}, "R": {},
}

// salvageText is tier 4: regex scraping of the raw file bytes.
func salvageText(data []byte) string {
	var b strings.Builder
	seen := make(map[string]struct{})

	for _, pattern := range salvagePatterns {
		for _, match := range pattern.FindAllSubmatch(data, -1) {
			fragment := printableFragment(match[1])
			if fragment == "" || isStructuralFragment(fragment) {
				continue
			}
			if _, dup := seen[fragment]; dup {
				continue
			}
			seen[fragment] = struct{}{}
			b.WriteString(fragment)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}

// printableFragment decodes a matched byte run as text, dropping invalid
// UTF-8 and non-printable characters.
func printableFragment(raw []byte) string {
	var b strings.Builder
	for _, r := range string(raw) {
		if r == unicode.ReplacementChar {
			continue
		}
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// isStructuralFragment reports whether every token in the fragment is a PDF
// structural keyword or a bare number.
func isStructuralFragment(fragment string) bool {
	tokens := strings.Fields(fragment)
	if len(tokens) == 0 {
		return true
	}
	for _, token := range tokens {
		if _, ok := pdfKeywords[token]; ok {
			continue
		}
		if isNumericToken(token) {
			continue
		}
		return false
	}
	return true
}

func isNumericToken(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) && r != '.' && r != '-' && r != '+' {
			return false
		}
	}
	return len(token) > 0
}
