package extract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner simulates pdftoppm and tesseract: the former writes page
// image files next to the given prefix, the latter returns canned text
// per page file.
type fakeRunner struct {
	pages     map[int]string // page number -> OCR text
	pdftoppm  int            // invocations
	tesseract int
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	switch name {
	case "pdftoppm":
		f.pdftoppm++
		prefix := args[len(args)-1]
		for page := range f.pages {
			// Zero-padded like newer pdftoppm versions.
			path := fmt.Sprintf("%s-%02d.png", prefix, page)
			if err := os.WriteFile(path, []byte("png"), 0o600); err != nil {
				return nil, nil, err
			}
		}
		return nil, nil, nil
	case "tesseract":
		f.tesseract++
		img := args[0]
		base := strings.TrimSuffix(filepath.Base(img), ".png")
		num := strings.TrimLeft(strings.TrimPrefix(base, "page-"), "0")
		for page, text := range f.pages {
			if fmt.Sprint(page) == num {
				return []byte(text), nil, nil
			}
		}
		return nil, nil, fmt.Errorf("unknown page image %s", img)
	default:
		return nil, nil, fmt.Errorf("unexpected command %s", name)
	}
}

func TestOCRExtractPagesOrdersAndMarks(t *testing.T) {
	runner := &fakeRunner{pages: map[int]string{
		2: "Second page has the totals ₹1,499.00",
		1: "First page of the scanned invoice",
	}}
	ocr := NewOCRExtractor(OCRConfig{}, nil)
	ocr.runner = runner

	got, err := ocr.ExtractPages(context.Background(), []byte("%PDF-fake"))
	require.NoError(t, err)

	first := strings.Index(got, "--- Page 1 (OCR) ---")
	second := strings.Index(got, "--- Page 2 (OCR) ---")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first)
	assert.Contains(t, got, "First page of the scanned invoice")
	assert.Contains(t, got, "Second page has the totals")
	assert.Equal(t, 1, runner.pdftoppm)
	assert.Equal(t, 2, runner.tesseract)
}

func TestOCRSkipsUnreadablePages(t *testing.T) {
	runner := &fakeRunner{pages: map[int]string{
		1: "A real paragraph of recognized invoice text",
		2: "x",
	}}
	ocr := NewOCRExtractor(OCRConfig{}, nil)
	ocr.runner = runner

	got, err := ocr.ExtractPages(context.Background(), []byte("%PDF-fake"))
	require.NoError(t, err)
	assert.Contains(t, got, "--- Page 1 (OCR) ---")
	assert.NotContains(t, got, "--- Page 2 (OCR) ---")
}

func TestOCRFailsWhenNoImagesProduced(t *testing.T) {
	runner := &fakeRunner{pages: map[int]string{}}
	ocr := NewOCRExtractor(OCRConfig{}, nil)
	ocr.runner = runner

	_, err := ocr.ExtractPages(context.Background(), []byte("%PDF-fake"))
	assert.Error(t, err)
}
