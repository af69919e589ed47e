// Package textutil normalizes raw extracted text and decides whether a
// piece of text is readable prose or binary garbage that leaked out of a
// PDF content stream.
package textutil

import (
	"regexp"
	"strings"
	"unicode"
)

// minReadableLength is the minimum number of significant characters for a
// text to be considered at all.
const minReadableLength = 10

// minPrintableRatio is the readability gate threshold: below this share of
// printable characters the text is treated as garbled.
const minPrintableRatio = 0.70

var (
	hexEscapeRun   = regexp.MustCompile(`\\x[0-9a-fA-F]{2,}`)
	octalEscapeRun = regexp.MustCompile(`\\[0-9]{3}`)
	streamMarker   = regexp.MustCompile(`endstream\s+endobj`)
	objectMarker   = regexp.MustCompile(`obj\s*<<.*?>>`)
	horizontalRun  = regexp.MustCompile(`[ \t\f\v]+`)
	blankLineRun   = regexp.MustCompile(`\n{3,}`)

	// Structural patterns that mark text as PDF-internal garbage rather
	// than extracted content.
	garbledPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\\x[0-9a-fA-F]{2}`),
		regexp.MustCompile(`\\[0-9]{3}`),
		regexp.MustCompile(`endstream\s+endobj`),
		regexp.MustCompile(`obj\s+<<`),
		regexp.MustCompile(`/[A-Za-z]+\s+[0-9]+\s+[0-9]+\s+R`),
	}

	escapeReplacer = strings.NewReplacer(
		`\n`, "\n",
		`\t`, " ",
		`\r`, "\n",
	)
)

// Clean normalizes extracted text: decodes common escape sequences,
// strips hex/octal escape runs and PDF structural markers, collapses
// whitespace runs to single spaces and blank-line runs to at most one blank
// line, and trims. Clean is idempotent.
func Clean(text string) string {
	if text == "" {
		return ""
	}

	s := strings.ReplaceAll(text, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")

	// Best-effort escape decoding; unknown sequences are left alone and
	// the binary-looking ones are stripped below.
	s = escapeReplacer.Replace(s)

	s = hexEscapeRun.ReplaceAllString(s, " ")
	s = octalEscapeRun.ReplaceAllString(s, " ")
	s = streamMarker.ReplaceAllString(s, " ")
	s = objectMarker.ReplaceAllString(s, " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(horizontalRun.ReplaceAllString(line, " "))
	}
	s = strings.Join(lines, "\n")
	s = blankLineRun.ReplaceAllString(s, "\n\n")

	return strings.TrimSpace(s)
}

// IsReadable reports whether text looks like extracted prose rather than
// binary garbage. It rejects text shorter than 10 significant characters,
// text whose printable-character ratio falls below 0.70, and text matching
// PDF structural markers (stream/object delimiters, indirect references,
// escape runs).
func IsReadable(text string) bool {
	if len(strings.TrimSpace(text)) < minReadableLength {
		return false
	}

	total := 0
	printable := 0
	for _, r := range text {
		total++
		if unicode.IsPrint(r) || unicode.IsSpace(r) {
			printable++
		}
	}
	if total == 0 {
		return false
	}
	if float64(printable)/float64(total) < minPrintableRatio {
		return false
	}

	for _, pattern := range garbledPatterns {
		if pattern.MatchString(text) {
			return false
		}
	}

	return true
}
