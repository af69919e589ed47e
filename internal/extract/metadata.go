package extract

import (
	"bytes"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// extractMetadata pulls best-effort document properties: page count and PDF
// version via pdfcpu (relaxed validation), info dictionary fields via the
// trailer. Failures are non-fatal and leave fields empty. The second return
// value reports whether any reader could open the stream.
func (c *Cascade) extractMetadata(data []byte) (Metadata, bool) {
	meta := Metadata{}
	opened := false

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(data), conf)
	if err != nil {
		c.logger.Warn("pdfcpu metadata read failed", "error", err)
	} else {
		opened = true
		if err := ctx.EnsurePageCount(); err == nil {
			meta.Pages = ctx.PageCount
		}
		meta.PDFVersion = ctx.HeaderVersion.String()
	}

	if c.readInfoDict(data, &meta) {
		opened = true
	}

	return meta, opened
}

// readInfoDict walks the trailer's Info dictionary for the classic document
// properties.
func (c *Cascade) readInfoDict(data []byte, meta *Metadata) (opened bool) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Warn("info dictionary read panicked", "panic", r)
		}
	}()

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return false
	}
	if meta.Pages == 0 {
		meta.Pages = reader.NumPage()
	}

	info := reader.Trailer().Key("Info")
	if info.IsNull() {
		return true
	}

	meta.Title = infoString(info, "Title")
	meta.Author = infoString(info, "Author")
	meta.Subject = infoString(info, "Subject")
	meta.Creator = infoString(info, "Creator")
	meta.Producer = infoString(info, "Producer")
	meta.CreationDate = infoString(info, "CreationDate")
	meta.ModificationDate = infoString(info, "ModDate")
	return true
}

func infoString(info pdf.Value, key string) string {
	v := info.Key(key)
	if v.IsNull() {
		return ""
	}
	return v.Text()
}
