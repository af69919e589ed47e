package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fintrack/docparse/internal/textutil"
)

// OCRConfig configures the OCR tier. Zero values fall back to the defaults
// below.
type OCRConfig struct {
	Pdftoppm  string // binary name or absolute path; default "pdftoppm"
	Tesseract string // binary name or absolute path; default "tesseract"
	Language  string // default "eng"
	DPI       int    // rasterization DPI, default 300
	MaxPages  int    // 0 = no limit
}

// OCRExtractor rasterizes PDF pages with pdftoppm and runs tesseract over
// each page image. It is the cascade's third tier, used for scanned
// documents with no extractable text layer.
type OCRExtractor struct {
	cfg    OCRConfig
	runner Runner
	logger *slog.Logger
}

// NewOCRExtractor creates an OCR extractor backed by the external binaries.
func NewOCRExtractor(cfg OCRConfig, logger *slog.Logger) *OCRExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Language == "" {
		cfg.Language = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	return &OCRExtractor{cfg: cfg, runner: execRunner{logger: logger}, logger: logger}
}

// ExtractPages OCRs every page of the document and concatenates the
// readable page outputs in page order, each under an OCR page marker.
// Per-page OCR failures are logged and skipped.
func (o *OCRExtractor) ExtractPages(ctx context.Context, data []byte) (string, error) {
	workDir, err := os.MkdirTemp("", "docparse-ocr-*")
	if err != nil {
		return "", fmt.Errorf("cannot create OCR work dir: %w", err)
	}
	defer os.RemoveAll(workDir)

	pdfPath := filepath.Join(workDir, "input.pdf")
	if err := os.WriteFile(pdfPath, data, 0o600); err != nil {
		return "", fmt.Errorf("cannot stage PDF for OCR: %w", err)
	}

	prefix := filepath.Join(workDir, "page")
	args := []string{"-r", strconv.Itoa(o.cfg.DPI), "-png"}
	if o.cfg.MaxPages > 0 {
		args = append(args, "-f", "1", "-l", strconv.Itoa(o.cfg.MaxPages))
	}
	args = append(args, pdfPath, prefix)

	if _, _, err := o.runner.Run(ctx, o.cfg.Pdftoppm, args...); err != nil {
		return "", fmt.Errorf("pdftoppm failed: %w", err)
	}

	images, err := pageImages(workDir)
	if err != nil {
		return "", err
	}
	if len(images) == 0 {
		return "", fmt.Errorf("pdftoppm produced no page images")
	}

	var b strings.Builder
	for _, img := range images {
		if ctx.Err() != nil {
			return b.String(), ctx.Err()
		}
		out, _, err := o.runner.Run(ctx, o.cfg.Tesseract, img.path, "stdout", "-l", o.cfg.Language)
		if err != nil {
			o.logger.Warn("tesseract failed on page", "page", img.page, "error", err)
			continue
		}
		pageText := strings.TrimSpace(string(out))
		if pageText == "" || !textutil.IsReadable(pageText) {
			continue
		}
		fmt.Fprintf(&b, "\n--- Page %d (OCR) ---\n", img.page)
		b.WriteString(pageText)
	}
	return b.String(), nil
}

type pageImage struct {
	page int
	path string
}

// pageImages lists the rasterized page files in page order. pdftoppm names
// them <prefix>-1.png, <prefix>-2.png, ... (zero-padded on some versions).
func pageImages(dir string) ([]pageImage, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("cannot list OCR work dir: %w", err)
	}

	var images []pageImage
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, "page-") || !strings.HasSuffix(name, ".png") {
			continue
		}
		numPart := strings.TrimSuffix(strings.TrimPrefix(name, "page-"), ".png")
		page, err := strconv.Atoi(strings.TrimLeft(numPart, "0"))
		if err != nil {
			continue
		}
		images = append(images, pageImage{page: page, path: filepath.Join(dir, name)})
	}

	sort.Slice(images, func(i, j int) bool { return images[i].page < images[j].page })
	return images, nil
}
