// Package extract turns a document's byte stream into text by walking a
// cascade of four extraction tiers of decreasing reliability: structured
// text, basic text, OCR, and raw byte salvage. Each tier's per-page output
// must pass a readability gate before it is accepted, and a later tier
// replaces the running best only when it strictly increases the amount of
// usable text.
package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fintrack/docparse/internal/textutil"
)

// minUsefulTextLength is the threshold below which the cascade keeps
// trying lower tiers.
const minUsefulTextLength = 100

// Cascade orchestrates the four extraction tiers over a byte stream.
type Cascade struct {
	maxFileSize int64
	ocr         *OCRExtractor
	logger      *slog.Logger
}

// NewCascade creates a cascade. The OCR extractor may be nil, in which case
// the OCR tier is skipped. A nil logger falls back to slog.Default().
func NewCascade(maxFileSize int64, ocr *OCRExtractor, logger *slog.Logger) *Cascade {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cascade{
		maxFileSize: maxFileSize,
		ocr:         ocr,
		logger:      logger,
	}
}

// ExtractFile reads a file and runs the cascade over its contents.
func (c *Cascade) ExtractFile(ctx context.Context, path string) (*Result, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("cannot access file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", path)
	}
	if c.maxFileSize > 0 && info.Size() > c.maxFileSize {
		return nil, fmt.Errorf("file too large: %d bytes (max: %d bytes)", info.Size(), c.maxFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file: %w", err)
	}

	return c.Extract(ctx, data, path)
}

// Extract runs the four tiers over an in-memory document. The name is used
// only for logging. The returned error is ErrDocumentUnreadable exactly
// when every tier came up empty and no PDF reader could open the stream;
// all lesser failures degrade to partial text.
func (c *Cascade) Extract(ctx context.Context, data []byte, name string) (*Result, error) {
	if len(data) == 0 {
		return nil, ErrDocumentUnreadable
	}

	best := ""
	method := MethodNone
	opened := false

	// Tier 1: structured text with table companion.
	text, ok := c.extractStructured(data)
	opened = opened || ok
	if strippedLen(text) > strippedLen(best) {
		best = text
		method = MethodStructured
	}

	// Tier 2: basic text, different decode path.
	if strippedLen(best) < minUsefulTextLength {
		c.logger.Debug("structured extraction poor, trying basic text", "document", name)
		text, ok = c.extractBasic(data)
		opened = opened || ok
		if strippedLen(text) > strippedLen(best) {
			best = text
			method = MethodBasic
		}
	}

	// Tier 3: OCR over rasterized pages.
	if strippedLen(best) < minUsefulTextLength && c.ocr != nil {
		c.logger.Debug("text extraction still poor, trying OCR", "document", name)
		text, err := c.ocr.ExtractPages(ctx, data)
		if err != nil {
			c.logger.Warn("ocr extraction failed", "document", name, "error", err)
		} else if strippedLen(text) > strippedLen(best) {
			best = text
			method = MethodOCR
		}
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
	}

	// Tier 4: raw byte salvage.
	if strippedLen(best) < minUsefulTextLength {
		c.logger.Debug("text extraction still poor, trying raw salvage", "document", name)
		text = salvageText(data)
		if strippedLen(text) > strippedLen(best) {
			best = text
			method = MethodSalvage
		}
	}

	meta, metaOK := c.extractMetadata(data)
	opened = opened || metaOK
	meta.FileSize = int64(len(data))

	cleaned := textutil.Clean(best)
	if cleaned == "" && !opened {
		return nil, ErrDocumentUnreadable
	}

	c.logger.Info("extraction completed",
		"document", name,
		"method", string(method),
		"text_length", len(cleaned),
		"pages", meta.Pages,
	)

	return &Result{
		RawText:     best,
		CleanedText: cleaned,
		TextLength:  len(cleaned),
		Metadata:    meta,
		Method:      method,
	}, nil
}

func strippedLen(s string) int {
	return len(strings.TrimSpace(s))
}
