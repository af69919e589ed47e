package extract

import "errors"

// Method identifies which extraction tier produced the winning text.
type Method string

const (
	MethodStructured Method = "structured"
	MethodBasic      Method = "basic"
	MethodOCR        Method = "ocr"
	MethodSalvage    Method = "salvage"
	MethodNone       Method = "none"
)

// ErrDocumentUnreadable is returned when no extraction tier could open the
// byte stream at all. It is the only hard failure the cascade produces;
// every lesser problem degrades to partial or empty text.
var ErrDocumentUnreadable = errors.New("document unreadable: no extraction tier could open the byte stream")

// Metadata holds best-effort document properties. Extraction failures here
// are non-fatal; missing fields stay empty.
type Metadata struct {
	FileSize         int64  `json:"file_size"`
	Pages            int    `json:"pages"`
	PDFVersion       string `json:"pdf_version,omitempty"`
	Title            string `json:"title,omitempty"`
	Author           string `json:"author,omitempty"`
	Subject          string `json:"subject,omitempty"`
	Creator          string `json:"creator,omitempty"`
	Producer         string `json:"producer,omitempty"`
	CreationDate     string `json:"creation_date,omitempty"`
	ModificationDate string `json:"modification_date,omitempty"`
}

// Result is the cascade output for one document.
type Result struct {
	RawText     string   `json:"raw_text"`
	CleanedText string   `json:"cleaned_text"`
	TextLength  int      `json:"text_length"`
	Metadata    Metadata `json:"metadata"`
	Method      Method   `json:"extraction_method"`
}
